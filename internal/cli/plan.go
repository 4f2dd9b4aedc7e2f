package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"

	api "github.com/mateim4/archer-capacity-planner/api/v1alpha1"
)

const (
	jsonFormat  = "json"
	tableFormat = "table"
)

var (
	legalOutputTypes = []string{jsonFormat, tableFormat}
)

type PlanOptions struct {
	GlobalOptions

	Output string
}

func DefaultPlanOptions() *PlanOptions {
	return &PlanOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Output:        tableFormat,
	}
}

func NewCmdPlan() *cobra.Command {
	o := DefaultPlanOptions()
	cmd := &cobra.Command{
		Use:   "plan REQUEST_FILE",
		Short: "Compute a placement plan from a request file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *PlanOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *PlanOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}

	return nil
}

func (o *PlanOptions) Run(ctx context.Context, args []string) error {
	contents, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading request file: %w", err)
	}

	var request api.CapacityPlanRequest
	if err := json.Unmarshal(contents, &request); err != nil {
		return fmt.Errorf("decoding request file: %w", err)
	}

	report, err := o.Client().CreatePlan(ctx, &request)
	if err != nil {
		return fmt.Errorf("computing plan: %w", err)
	}

	if o.Output == jsonFormat {
		marshalled, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling report: %w", err)
		}
		fmt.Printf("%s\n", string(marshalled))
		return nil
	}

	printReportTables(report)
	return nil
}

func printReportTables(report *api.CapacityPlanReport) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, '\t', 0)

	fmt.Fprintln(w, "VM\tCLUSTER\tSPILLOVER")
	for _, a := range report.Assignments {
		fmt.Fprintf(w, "%s\t%s\t%t\n", a.WorkloadItemId, a.ClusterId, a.Spillover)
	}
	w.Flush()

	if len(report.Unplaced) > 0 {
		fmt.Println()
		fmt.Fprintln(w, "UNPLACED VM\tREASON")
		for _, u := range report.Unplaced {
			fmt.Fprintf(w, "%s\t%s\n", u.WorkloadItemId, u.Reason)
		}
		w.Flush()
	}

	if len(report.InvalidClusters) > 0 {
		fmt.Println()
		fmt.Fprintln(w, "INVALID CLUSTER\tREASON")
		for _, c := range report.InvalidClusters {
			fmt.Fprintf(w, "%s\t%s\n", c.ClusterId, c.Reason)
		}
		w.Flush()
	}

	fmt.Println()
	fmt.Fprintln(w, "CLUSTER\tCPU%\tMEMORY%\tSTORAGE%\tBOTTLENECKS")
	clusterIds := make([]string, 0, len(report.ClusterUtilizations))
	for id := range report.ClusterUtilizations {
		clusterIds = append(clusterIds, id)
	}
	sort.Strings(clusterIds)
	for _, id := range clusterIds {
		u := report.ClusterUtilizations[id]
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%s\n",
			u.ClusterId, u.CpuUtilizationPct, u.MemoryUtilizationPct, u.StorageUtilizationPct,
			strings.Join(u.Bottlenecks, ","))
	}
	w.Flush()

	fmt.Println()
	fmt.Printf("Sufficient: %t\n", report.Sufficient)
}
