package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hush/internal/crypto"
	"hush/internal/domain"
	"hush/internal/session"
	"hush/internal/transport"
)

// demo <message>...: establish a session and push each message from the
// sender to the peer through the in-memory transport, round-tripping every
// envelope through its wire encoding on the way.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [message]...",
		Short: "Run a scripted two-party exchange",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			msgs := args
			if len(msgs) == 0 {
				msgs = []string{"hello", "world"}
			}

			a := domain.PeerID(senderName)
			b := domain.PeerID(peerName)

			sess := session.New(a, b)
			defer sess.Close()
			if err := sess.Establish(); err != nil {
				return fmt.Errorf("establish: %w", err)
			}

			ea, _ := sess.Endpoint(a)
			eb, _ := sess.Endpoint(b)
			fmt.Fprintf(out, "session established: %s [%s] <-> %s [%s]\n",
				a, crypto.Fingerprint(ea.PublicKey().Slice()),
				b, crypto.Fingerprint(eb.PublicKey().Slice()))

			pipe := transport.NewMemory()
			for _, m := range msgs {
				env, err := sess.Send(a, []byte(m))
				if err != nil {
					return fmt.Errorf("send: %w", err)
				}
				// Round-trip through the wire form the transport would carry.
				wire, err := transport.Encode(env)
				if err != nil {
					return err
				}
				env, err = transport.Decode(wire)
				if err != nil {
					return err
				}
				if err := pipe.Deliver(ctx, b, env); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s -> %s  counter=%d  %d wire bytes\n", a, b, env.Counter, len(wire))
			}

			envs, err := pipe.Collect(ctx, b, 0)
			if err != nil {
				return err
			}
			for _, env := range envs {
				msg, err := sess.Receive(env)
				if err != nil {
					return fmt.Errorf("receive: %w", err)
				}
				fmt.Fprintf(out, "%s got [%d] %q at %s\n",
					b, msg.Counter, msg.Plaintext, msg.Timestamp.Format("15:04:05.000"))
			}

			fmt.Fprintf(out, "%s's ratchet counter is now %d\n", a, ea.Counter())
			return nil
		},
	}
}
