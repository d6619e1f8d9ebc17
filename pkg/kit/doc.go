// Package kit loads template bundles ("kits") and resolves their entries.
//
// A kit is any fs.FS containing a manifest (manifest.yaml, manifest.yml, or
// manifest.json) plus the template entries the manifest references. Embedded
// filesystems, zip archives opened with archive/zip, and plain directories
// all work unchanged:
//
//	//go:embed kits/welcome
//	var welcomeKit embed.FS
//
//	k, err := kit.Open(welcomeKit, kit.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	src, err := k.Entry(k.Manifest().Path)
//
// # Manifest
//
// The manifest carries the message configuration: the source entry path, the
// ordered header list, assembler selection and options, and optionally the
// charset of kit entries. Header entries preserve document order, including
// duplicate field names and the order of structured parameters:
//
//	assembler: markdown
//	path: body.mkdn
//	header:
//	  - From: sender@example.com
//	  - Subject: "Welcome, {{.name}}"
//	  - X-Mailer: [mailkit, {version: "1"}]
//	html_wrapper: wrapper.html
//	marker: CONTENT
//
// # Entries
//
// Entry returns decoded text. When the manifest declares a non-UTF-8
// charset, the raw bytes are transformed through the matching IANA encoding;
// entries that do not decode to valid UTF-8 are rejected rather than passed
// through corrupted.
package kit
