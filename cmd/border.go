package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagPort string

var borderCmd = &cobra.Command{
	Use:   "border",
	Short: "Show US-Mexico border wait times",
	Long:  "Show live commercial and FAST lane wait times for major US-Mexico crossings, from the CBP feed.",
	RunE:  runBorder,
}

func init() {
	borderCmd.Flags().StringVar(&flagPort, "port", "", "filter to crossings matching this port name")
}

func runBorder(cmd *cobra.Command, args []string) error {
	builder, _, err := newBuilder()
	if err != nil {
		return err
	}

	crossings := builder.Crossings(cmd.Context())
	if flagPort != "" {
		filtered := crossings[:0:0]
		for _, c := range crossings {
			if strings.Contains(strings.ToLower(c.Name), strings.ToLower(flagPort)) {
				filtered = append(filtered, c)
			}
		}
		crossings = filtered
	}

	if len(crossings) == 0 {
		fmt.Println(emptyState)
		return nil
	}

	for _, c := range crossings {
		commercial := "closed"
		if c.Commercial.DelayKnown {
			commercial = fmt.Sprintf("%d min (%d lanes)", c.Commercial.DelayMinutes, c.Commercial.LanesOpen)
		}
		fast := "closed"
		if c.FAST.DelayKnown {
			fast = fmt.Sprintf("%d min (%d lanes)", c.FAST.DelayMinutes, c.FAST.LanesOpen)
		}

		fmt.Println(titleStyle.Render(c.Name))
		fmt.Printf("  commercial: %s\n", severityStyles[c.Severity()].Render(commercial))
		fmt.Printf("  FAST:       %s\n", fast)
		fmt.Printf("  status:     %s  %s\n", c.Status, timeStyle.Render(c.Commercial.UpdateTime))

		if f, ok := builder.Forecast(cmd.Context(), c.PortName); ok {
			fmt.Printf("  weather:    %s, %d°F, wind %d mph\n", f.Condition(), f.TempF(), f.WindMPH())
		}
		fmt.Println()
	}
	return nil
}
