package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Hidayat0507/tradebot-sub001/pkg/exchange"
	"github.com/spf13/cobra"
)

func newPairsCmd() *cobra.Command {
	var (
		asset   string
		testnet bool
		proxy   string
	)

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "列出包含指定币种的交易对",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			client := exchange.NewBinanceClient("", "", proxy, testnet)
			return printPairs(ctx, cmd.OutOrStdout(), client, asset)
		},
	}

	cmd.Flags().StringVar(&asset, "asset", "BTC", "币种")
	cmd.Flags().BoolVar(&testnet, "testnet", false, "使用测试网")
	cmd.Flags().StringVar(&proxy, "proxy", "", "代理地址，例如: http://127.0.0.1:7890")
	return cmd
}

func printPairs(ctx context.Context, w io.Writer, lister exchange.MarketLister, asset string) error {
	markets, err := lister.ListMarkets(ctx)
	if err != nil {
		return err
	}

	matched := exchange.FilterByAsset(markets, asset)
	if len(matched) == 0 {
		_, err = fmt.Fprintf(w, "no markets found for %s\n", asset)
		return err
	}
	for _, m := range matched {
		if _, err := fmt.Fprintf(w, "%-14s %-14s %s\n", m.Symbol, m.Pair(), m.Status); err != nil {
			return err
		}
	}
	return nil
}
