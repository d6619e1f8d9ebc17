// Package mailkit assembles MIME email messages from packaged template
// bundles ("kits").
//
// A kit is an fs.FS holding a manifest plus template entries. The manifest
// describes one message: the source entry, the ordered header list, and the
// assembler options. The markdown assembler, the plugin this module ships,
// renders a Markdown source into matching plaintext and HTML parts inside a
// multipart/alternative container:
//
//	//go:embed kits/welcome
//	var welcomeKit embed.FS
//
//	msg, err := mailkit.Assemble(welcomeKit, render.Stash{"name": "Alice"})
//	if err != nil {
//		return err
//	}
//
//	var buf bytes.Buffer
//	if _, err := msg.WriteTo(&buf); err != nil {
//		return err
//	}
//
// For more control, open the kit and construct the assembler separately:
//
//	k, err := mailkit.Open(welcomeKit, kit.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	asm, err := mailkit.NewAssembler(k)
//	if err != nil {
//		return err
//	}
//	msg, err := asm.Assemble(stash)
//
// The packages compose independently: pkg/kit loads bundles, pkg/render
// defines the template contract, pkg/markdown transforms content, pkg/mimemsg
// builds and serializes the MIME container, and pkg/sender delivers the
// result through providers such as Resend.
package mailkit
