package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/warp/incentive-engine/factory"
	"github.com/warp/incentive-engine/format"
	"github.com/warp/incentive-engine/incentive"
)

// errReported marks an error already printed for the user.
var errReported = errors.New("reported")

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().String("nrv", "", "NRV actual (e.g. 30,00,000)")
	calcCmd.Flags().String("er", "", "ER actual")
	calcCmd.Flags().String("er-new", "", "ER from new customers")
	calcCmd.Flags().String("sih", "false", "S.I.H. condition met (true/false, yes/no)")
	calcCmd.Flags().Lookup("sih").NoOptDefVal = "true"
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate an incentive payout",
	Long: `Calculate an incentive payout and print it the way the calculator UI does.

Amounts accept plain or grouped digits ("3000000", "30,00,000", "₹4,50,000").
A value that is not a number is rejected rather than treated as zero.`,
	Example: `  incentive calc --nrv 3000000 --er 450000 --er-new 0 --sih
  incentive calc --nrv 15,00,000 --er 2,25,000 --er-new 2,00,000 --sih=yes`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

func runCalc(cmd *cobra.Command, args []string) error {
	nrv, _ := cmd.Flags().GetString("nrv")
	er, _ := cmd.Flags().GetString("er")
	erNew, _ := cmd.Flags().GetString("er-new")
	sihRaw, _ := cmd.Flags().GetString("sih")

	sih, err := factory.ParseCondition(sihRaw)
	if err != nil {
		return reportError(cmd.ErrOrStderr(), err)
	}

	in, err := factory.NewInputFactory().Parse(factory.FormInput{
		RevenueActual:        nrv,
		EarningsActual:       er,
		EarningsNewCustomers: erNew,
		ConditionMet:         sih,
	})
	if err != nil {
		return reportError(cmd.ErrOrStderr(), err)
	}

	res, err := incentive.Calculate(in)
	if err != nil {
		return reportError(cmd.ErrOrStderr(), err)
	}

	return printResult(cmd.OutOrStdout(), format.Render(res))
}

func reportError(w io.Writer, err error) error {
	fmt.Fprintln(w, format.ErrorMessage(err))
	return errReported
}

// printResult writes the result table, or the warning when S.I.H. is not met.
func printResult(w io.Writer, d format.Display) error {
	if !d.ShowResults {
		_, err := fmt.Fprintln(w, d.Warning)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	rows := [][2]string{
		{"NRV Achievement", d.RevenuePercent},
		{"ER Achievement", d.EarningsPercent},
		{"Final Achievement Tier", d.FinalTier},
		{"NRV Incentive", d.RevenueIncentive},
		{"ER Incentive", d.EarningsIncentive},
		{"New Customer Booster", d.BoosterIncentive},
		{"Total Incentive", d.TotalIncentive},
		{"Payout 1 (50%)", d.Payout1},
		{"Payout 2 (50%)", d.Payout2},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t\n", row[0], row[1])
	}
	return tw.Flush()
}
