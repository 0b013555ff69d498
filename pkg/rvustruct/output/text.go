package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ukaji3/rvustruct/pkg/rvustruct/models"
)

// WriteReport prints the report summary as aligned text.
func WriteReport(w io.Writer, rep models.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Source:\t%s\n", rep.Source)
	fmt.Fprintf(tw, "Total Pre-RC RVU:\t%.2f\n", rep.Metrics.TotalPreRVU)
	fmt.Fprintf(tw, "Total Post-RC RVU:\t%.2f\n", rep.Metrics.TotalPostRVU)
	fmt.Fprintf(tw, "Overall Improvement:\t%.2f%%\n", rep.Metrics.ImprovementPct)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "DEPARTMENT\tTYPE\tRVU")
	for _, p := range rep.Comparison {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Department, p.Type, p.RVU)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "CATEGORY\tPRE RVU\tPRE %\tPOST RVU\tPOST %")
	for _, l := range rep.LevelTable {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", l.Category, l.PreRVU, l.PrePct, l.PostRVU, l.PostPct)
	}

	return tw.Flush()
}

// WriteServices prints one department's drilldown as aligned text.
func WriteServices(w io.Writer, dept string, services []models.ServiceDetail) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Department:\t%s\n", dept)
	fmt.Fprintln(tw, "SERVICE\tAVG ADJ TOTAL RVU\tCOUNT %")
	for _, s := range services {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Service, s.AvgAdjTotalRVU, s.CountPct)
	}
	return tw.Flush()
}
