// Package sender delivers assembled messages through pluggable email
// providers.
//
// Assemblers produce mimemsg.Message values; providers generally want typed
// fields instead of raw MIME. FromMessage bridges the two:
//
//	msg, err := assembler.Assemble(stash)
//	if err != nil {
//		return err
//	}
//	email, err := sender.FromMessage(msg)
//	if err != nil {
//		return err
//	}
//	if err := provider.Send(ctx, email); err != nil {
//		return err
//	}
//
// The resend subpackage provides a Sender backed by the Resend API. Custom
// providers implement the one-method Sender interface.
package sender
