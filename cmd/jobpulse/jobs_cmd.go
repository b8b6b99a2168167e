package main

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"jobpulse/internal/config"
	"jobpulse/internal/dashboard"
)

var (
	jobsQuery    string
	jobsSource   string
	jobsRoleType string
	jobsLocation string
	jobsDays     int
	jobsFile     string
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Work with the job dataset",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered job table and stats",
	Long:  "Runs the same filter and stats as the dashboard page and prints them as a table.",
	RunE:  runJobsList,
}

func init() {
	f := jobsListCmd.Flags()
	f.StringVarP(&jobsQuery, "query", "q", "", "Substring of title or company")
	f.StringVar(&jobsSource, "source", "", "Exact source (case-insensitive)")
	f.StringVar(&jobsRoleType, "role-type", "", "Exact role type (case-insensitive)")
	f.StringVar(&jobsLocation, "location", "", "Substring of location")
	f.IntVar(&jobsDays, "days", 0, "Only postings from the last N days, today included")
	f.StringVar(&jobsFile, "jobs", "", "Path to jobs YAML (overrides dashboard.jobs_file)")

	jobsCmd.AddCommand(jobsListCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsList(cmd *cobra.Command, _ []string) error {
	cfg, res, path, err := resolveConfig(configOptions{
		DataDir:    flagDataDir,
		ConfigPath: flagConfigPath,
		Override: func(c *config.Config) {
			if jobsFile != "" {
				c.Dashboard.JobsFile = jobsFile
			}
		},
	})
	if err != nil {
		return err
	}
	if err := validationError(path, res); err != nil {
		return err
	}

	a, err := newApp(cfg, res)
	if err != nil {
		return err
	}
	defer func() { _ = a.Logger.Sync() }()

	// go through url.Values so flags get exactly the query-string semantics
	v := url.Values{}
	v.Set("q", jobsQuery)
	v.Set("source", jobsSource)
	v.Set("role_type", jobsRoleType)
	v.Set("location", jobsLocation)
	if jobsDays != 0 {
		v.Set("days", strconv.Itoa(jobsDays))
	}

	return printJobs(cmd.OutOrStdout(), a.Dashboard.View(dashboard.ParseCriteria(v)))
}

func printJobs(w io.Writer, res dashboard.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tCOMPANY\tLOCATION\tSOURCE\tROLE\tPOSTED\tAPPLY")
	for _, j := range res.Jobs {
		posted := j.PostedDate.String()
		if j.PostedOn(res.Today) {
			posted += " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			j.Title, j.Company, j.Location, j.Source, j.RoleType, posted, j.ApplyURL)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	st := res.Stats
	_, err := fmt.Fprintf(w, "\n%d visible, %d posted today (*), %d source(s), generated %s\n",
		st.TotalVisible, st.PostedTodayCount, st.DistinctSourceCount,
		st.GeneratedAt.Format("2006-01-02 15:04 MST"))
	return err
}
