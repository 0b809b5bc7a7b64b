package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/moolekkari/endianness/core"
	"github.com/moolekkari/endianness/internal/endian"
	"github.com/moolekkari/endianness/report"
)

var strategy = string(core.StrategyShift)

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "endianness",
		Short:        "Print the host byte order and byte swap sample values",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Flags().VisitAll(func(flag *pflag.Flag) {
				klog.V(2).Infof("FLAG: --%s=%q", flag.Name, flag.Value)
			})

			swapper, err := core.NewSwapper(core.Strategy(strategy))
			if err != nil {
				return err
			}
			klog.V(1).Infof("host is %v, swapping with %s strategy", endian.Host, strategy)

			return report.Write(cmd.OutOrStdout(), endian.Host, swapper, report.DefaultValues)
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", strategy,
		fmt.Sprintf("byte swap implementation, one of %v", core.Strategies()))
	return cmd
}

func main() {
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	defer klog.Flush()

	command := NewRootCommand()
	if err := command.Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
}

func init() {
	klog.InitFlags(nil)
}
