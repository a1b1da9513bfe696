// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-agreement-keeper/internal/client"
	"github.com/MKhiriev/go-agreement-keeper/internal/config"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/spf13/cobra"
)

const defaultPageSize = 20

var errPacketNotFound = errors.New("signature packet not found")

type cli struct {
	configPath string
	info       models.AppBuildInfo
	logger     *logger.Logger
}

func newRootCommand(info models.AppBuildInfo, logger *logger.Logger) *cobra.Command {
	c := &cli{info: info, logger: logger}

	root := &cobra.Command{
		Use:           "agreement-client",
		Short:         "Create, sign and read encrypted agreements on the ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to the JSON config file")

	root.AddCommand(
		c.createCommand(),
		c.signCommand(),
		c.fetchCommand(),
		c.agreementsCommand(),
		c.signaturesCommand(),
		c.profileCommand(),
		c.checkCommand(),
		c.browseCommand(),
		c.versionCommand(),
	)
	return root
}

// withApp builds the client runtime for one command and closes it after.
func (c *cli) withApp(cmd *cobra.Command, login bool, fn func(app *client.App) error) error {
	cfg, err := config.GetClientConfig(c.configPath)
	if err != nil {
		return err
	}

	app, err := client.NewApp(*cfg, c.info, c.logger)
	if err != nil {
		return err
	}
	defer app.Close()

	if login {
		if err = app.Login(cmd.Context()); err != nil {
			return err
		}
	}
	return fn(app)
}

func (c *cli) createCommand() *cobra.Command {
	var (
		identifier string
		file       string
		slots      []string
		scheme     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Encrypt a document, pin it and submit a new agreement",
		Example: "  agreement-client create --id lease-2026 --file lease.pdf \\\n" +
			"    --slot tenant:0xAbC...:1 --slot witness:*:2",
		RunE: func(cmd *cobra.Command, _ []string) error {
			document, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			descriptions, err := parseSlots(slots)
			if err != nil {
				return err
			}

			return c.withApp(cmd, true, func(app *client.App) error {
				agreement, receipt, err := app.Services().Protocol.Create(app.Context(cmd.Context()), models.CreateAgreementRequest{
					Identifier: identifier,
					Document:   document,
					Slots:      descriptions,
					KeyScheme:  models.KeyScheme(scheme),
				})
				if err != nil {
					return err
				}
				agreement.Index = receipt.Index
				return printJSON(cmd.OutOrStdout(), map[string]any{"agreement": agreement, "receipt": receipt})
			})
		},
	}

	cmd.Flags().StringVar(&identifier, "id", "", "agreement identifier, unique per owner")
	cmd.Flags().StringVarP(&file, "file", "f", "", "document to encrypt")
	cmd.Flags().StringArrayVar(&slots, "slot", nil, "slot as id[:signer[:uses]], signer * means anyone, uses 0 means unlimited")
	cmd.Flags().StringVar(&scheme, "scheme", "", "key scheme: personal-sign or typed-data-v1")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("slot")
	return cmd
}

func (c *cli) signCommand() *cobra.Command {
	var (
		owner string
		index uint64
		slot  string
		file  string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Attach a signed document to a slot of an agreement",
		RunE: func(cmd *cobra.Command, _ []string) error {
			document, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			return c.withApp(cmd, true, func(app *client.App) error {
				packet, receipt, err := app.Services().Protocol.Sign(app.Context(cmd.Context()), models.SignAgreementRequest{
					Owner:    owner,
					Index:    index,
					Slot:     slot,
					Document: document,
				})
				if err != nil {
					return err
				}
				packet.Index = receipt.Index
				packet.BlockNumber = receipt.BlockNumber
				return printJSON(cmd.OutOrStdout(), map[string]any{"packet": packet, "receipt": receipt})
			})
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "agreement owner address")
	cmd.Flags().Uint64Var(&index, "index", 0, "agreement index")
	cmd.Flags().StringVar(&slot, "slot", "", "slot identifier")
	cmd.Flags().StringVarP(&file, "file", "f", "", "signed document to encrypt and attach")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("slot")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (c *cli) fetchCommand() *cobra.Command {
	var (
		owner  string
		index  uint64
		signer string
		packet int64
		out    string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Decrypt an agreement document, or a packet document with --packet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, false, func(app *client.App) error {
				ctx := app.Context(cmd.Context())
				protocol := app.Services().Protocol

				var (
					data []byte
					err  error
				)
				if packet < 0 {
					data, err = protocol.RetrieveAgreementDocument(ctx, owner, index)
				} else {
					var found models.SignaturePacket
					found, err = findPacket(cmd, app, signer, owner, index, uint64(packet))
					if err == nil {
						data, err = protocol.RetrievePacketDocument(ctx, found)
					}
				}
				if err != nil {
					return err
				}

				if out == "" || out == "-" {
					_, err = cmd.OutOrStdout().Write(data)
					return err
				}
				if err = os.WriteFile(out, data, 0o600); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d bytes to %s\n", len(data), out)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "agreement owner address")
	cmd.Flags().Uint64Var(&index, "index", 0, "agreement index")
	cmd.Flags().StringVar(&signer, "signer", "", "packet signer address, defaults to the wallet")
	cmd.Flags().Int64Var(&packet, "packet", -1, "signer-scoped packet index")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, stdout when empty")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

// findPacket pages through the signer's packets until it meets the one
// with the given index on the given agreement.
func findPacket(cmd *cobra.Command, app *client.App, signer, owner string, agreementIndex, packetIndex uint64) (models.SignaturePacket, error) {
	ctx := app.Context(cmd.Context())
	for page := 1; ; page++ {
		packets, err := app.Services().Protocol.ListSignatures(ctx, signer, page, defaultPageSize)
		if err != nil {
			return models.SignaturePacket{}, err
		}
		for _, p := range packets {
			if p.Index == packetIndex && p.AgreementIndex == agreementIndex && models.SameAddress(p.AgreementOwner, owner) {
				return p, nil
			}
		}
		if len(packets) < defaultPageSize {
			return models.SignaturePacket{}, fmt.Errorf("%w: #%d on %s#%d", errPacketNotFound, packetIndex, owner, agreementIndex)
		}
	}
}

func (c *cli) agreementsCommand() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "agreements [address]",
		Short: "List agreements owned by an address, the wallet by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, false, func(app *client.App) error {
				agreements, err := app.Services().Protocol.ListAgreements(app.Context(cmd.Context()), firstArg(args), page, pageSize)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), agreements)
			})
		},
	}
	addPageFlags(cmd, &page, &pageSize)
	return cmd
}

func (c *cli) signaturesCommand() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "signatures [address]",
		Short: "List signature packets made by an address, the wallet by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, false, func(app *client.App) error {
				packets, err := app.Services().Protocol.ListSignatures(app.Context(cmd.Context()), firstArg(args), page, pageSize)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), packets)
			})
		},
	}
	addPageFlags(cmd, &page, &pageSize)
	return cmd
}

func (c *cli) profileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [address]",
		Short: "Show agreement and signature counters of an address",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, false, func(app *client.App) error {
				profile, err := app.Services().Protocol.Profile(app.Context(cmd.Context()), firstArg(args))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), profile)
			})
		},
	}
}

func (c *cli) checkCommand() *cobra.Command {
	var (
		owner string
		index uint64
		slot  string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether the wallet may sign a slot right now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, false, func(app *client.App) error {
				authorization, err := app.Services().Protocol.Authorize(app.Context(cmd.Context()), owner, index, slot)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), authorization)
			})
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "agreement owner address")
	cmd.Flags().Uint64Var(&index, "index", 0, "agreement index")
	cmd.Flags().StringVar(&slot, "slot", "", "slot identifier")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("slot")
	return cmd
}

func (c *cli) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the terminal agreement browser",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, false, func(app *client.App) error {
				return app.Run(cmd.Context())
			})
		},
	}
}

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), c.info)
		},
	}
}

func addPageFlags(cmd *cobra.Command, page, pageSize *int) {
	cmd.Flags().IntVar(page, "page", 1, "1-based page number")
	cmd.Flags().IntVar(pageSize, "page-size", defaultPageSize, "records per page")
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// parseSlots reads slots written as id[:signer[:uses]].
func parseSlots(raw []string) ([]models.SlotDescription, error) {
	slots := make([]models.SlotDescription, 0, len(raw))
	for _, r := range raw {
		parts := strings.Split(r, ":")
		if len(parts) > 3 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("invalid slot %q, want id[:signer[:uses]]", r)
		}

		slot := models.SlotDescription{Identifier: strings.TrimSpace(parts[0])}
		if len(parts) > 1 && parts[1] != "" {
			signer := strings.TrimSpace(parts[1])
			slot.Signer = &signer
		}
		if len(parts) > 2 && parts[2] != "" {
			n, err := strconv.ParseUint(parts[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid uses in slot %q: %w", r, err)
			}
			slot.AllowedToUse = &n
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
