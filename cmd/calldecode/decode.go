package main

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/branched-services/go-calldata"
	"github.com/branched-services/go-calldata/internal/config"
	"github.com/branched-services/go-calldata/internal/logger"
	"github.com/branched-services/go-calldata/internal/render"
)

const (
	txFlag     = "tx"
	rpcTimeout = 30 * time.Second
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [calldata]",
		Short: "Decode calldata into a selector, words and nested calls",
		Long: `Decode calldata given as the argument, read from stdin, or fetched with --tx ` +
			`from the node at --rpc-url. A 0x prefix is optional.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initCommandFlags(cmd)
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug, Console: cfg.Console})
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			defer l.Sync() //nolint:errcheck

			txHash, _ := cmd.Flags().GetString(txFlag)
			input, err := readCalldata(cmd.Context(), cmd.InOrStdin(), args, txHash, cfg.RpcUrl)
			if err != nil {
				return err
			}

			book, err := loadSelectorBook(cfg.AbiFile)
			if err != nil {
				return err
			}

			opts := append(cfg.Decoder.Options(), calldata.WithLogger(l))
			decoded, err := calldata.New(opts...).Decode(input)
			if err != nil {
				return errors.Wrap(err, "failed to decode calldata")
			}

			if diags := decoded.Diagnostics(); len(diags) > 0 {
				l.Sugar().Infow("Decoded with diagnostics", "count", len(diags))
			}

			return render.New(book).Render(cmd.OutOrStdout(), cfg.Output, decoded)
		},
	}
}

// readCalldata takes the calldata from the argument, the transaction hash
// or stdin, in that order.
func readCalldata(ctx context.Context, stdin io.Reader, args []string, txHash, rpcURL string) (string, error) {
	switch {
	case len(args) > 0:
		return args[0], nil
	case txHash != "":
		return fetchTransactionInput(ctx, rpcURL, txHash)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, "failed to read calldata from stdin")
	}
	input := strings.TrimSpace(string(data))
	if input == "" {
		return "", errors.New("no calldata given: pass it as an argument, on stdin, or with --tx")
	}
	return input, nil
}

func fetchTransactionInput(ctx context.Context, rpcURL, txHash string) (string, error) {
	if rpcURL == "" {
		return "", errors.New("--tx requires --rpc-url")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return "", errors.Wrapf(err, "failed to dial %s", rpcURL)
	}
	defer client.Close()

	tx, _, err := client.TransactionByHash(ctx, common.HexToHash(txHash))
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch transaction %s", txHash)
	}
	return hexutil.Encode(tx.Data()), nil
}

func loadSelectorBook(abiFile string) (*calldata.SelectorBook, error) {
	book := calldata.DefaultSelectorBook()
	if abiFile == "" {
		return book, nil
	}

	data, err := os.ReadFile(abiFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read abi file %s", abiFile)
	}
	parsed, err := calldata.ParseABI(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse abi file %s", abiFile)
	}
	book.AddABI(parsed)
	return book, nil
}
