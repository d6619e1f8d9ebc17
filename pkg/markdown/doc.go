// Package markdown is the Markdown assembler: it turns a kit's Markdown
// source entry into a multipart/alternative email message with matching
// plaintext and HTML parts.
//
// The produced message always has exactly two body parts, text/plain first
// and text/html second, both UTF-8 and quoted-printable. Manifests that
// request attachments, extra alternatives, or custom content attributes are
// rejected at construction time.
//
// # Pipeline
//
// On each Assemble call the source entry is fetched and, when a renderer is
// configured, rendered with the caller's stash. The result forks into the
// two variants:
//
//   - the plaintext variant is that post-render text, untouched
//   - the HTML variant is entity-encoded (encode_entities), signature-munged
//     (munge_signature), converted from Markdown, and optionally sanitized
//     (sanitize_html)
//
// Each variant is then independently injected into its wrapper entry
// (html_wrapper / text_wrapper) when one is configured. By default the first
// HTML comment matching the marker name is replaced:
//
//	<html><body><!-- CONTENT --></body></html>
//
// With render_wrapper set, the wrapper is instead rendered as a template and
// the variant content is made available as the wrapped_content stash
// variable; marker substitution is skipped entirely in this mode.
//
// # Headers
//
// Manifest header entries are rendered through the same renderer and emitted
// in manifest order, duplicates included. A [value, {params}] pair becomes a
// structured value like "v; charset=utf-8" and is never rendered. A
// ":renderer: ~" directive on an entry disables rendering for that entry;
// naming an alternate renderer is not supported and fails.
//
// # Signature munging
//
// With munge_signature, text after the first line that is exactly "-- " is
// treated as a signature and every signature line gets a leading <br /> so
// Markdown's paragraph folding cannot collapse it. The delimiter contract is
// fixed; the surrounding whitespace is a best-effort heuristic and not
// stable across versions. Munging applies only to the HTML path.
package markdown
