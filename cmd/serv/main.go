package main

import (
	"log"

	"github.com/Hidayat0507/tradebot-sub001/internal"
	"github.com/spf13/cobra"
)

var (
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "tradebot",
	Short: "Tradebot - 交易机器人配置与信号接收服务",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		return internal.Run(configFile)
	},
}

func init() {
	// 全局配置文件标志
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "配置文件路径")
	rootCmd.AddCommand(newPairsCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
