//goclust analyzes a directory of PDB cluster structures and prints
//size-binned cluster statistics.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/fang"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	clust "github.com/xscatter/goclust"
	"github.com/xscatter/goclust/atomdata"
	"github.com/xscatter/goclust/pdb"
)

//config mirrors the YAML configuration file. Flags override it.
type config struct {
	Directory        string                  `yaml:"directory"`
	TargetElements   []string                `yaml:"target_elements"`
	NeighborElements []string                `yaml:"neighbor_elements"`
	Thresholds       []thresholdConfig       `yaml:"thresholds"`
	Charges          map[string]chargeConfig `yaml:"charges"`
	Method           string                  `yaml:"method"`
	Shape            string                  `yaml:"shape"`
	EnergyEV         float64                 `yaml:"energy_ev"`
	Cpus             int                     `yaml:"cpus"`
	CoreResidues     []string                `yaml:"core_residues"`
	ShellResidues    []string                `yaml:"shell_residues"`
	CopyUnmatched    string                  `yaml:"copy_unmatched"`
}

type thresholdConfig struct {
	Target   string  `yaml:"target"`
	Neighbor string  `yaml:"neighbor"`
	Max      float64 `yaml:"max"`
}

type chargeConfig struct {
	Charge       float64 `yaml:"charge"`
	Coordination int     `yaml:"coordination"`
}

func defaultConfig() *config {
	return &config{
		Method:        "ionic_radius",
		Shape:         "sphere",
		EnergyEV:      clust.DefaultEnergy,
		CoreResidues:  []string{"PBI"},
		ShellResidues: []string{"DMS"},
	}
}

//loadConfig reads the YAML file, if given, over the defaults.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

//options translates the file/flag configuration into library options,
//rejecting unknown method and shape names before any file is read.
func (c *config) options() (*clust.Options, error) {
	o := clust.DefaultOptions()
	o.TargetElements = c.TargetElements
	o.NeighborElements = c.NeighborElements
	o.Thresholds = make(map[clust.Pair]float64, len(c.Thresholds))
	for _, t := range c.Thresholds {
		o.Thresholds[clust.Pair{Target: t.Target, Neighbor: t.Neighbor}] = t.Max
	}
	o.Charges = make(clust.FormalChargeTable, len(c.Charges))
	for sym, ch := range c.Charges {
		o.Charges[sym] = clust.FormalCharge{Charge: ch.Charge, Coordination: ch.Coordination}
	}
	var err error
	if o.Method, err = clust.ParseVolumeMethod(c.Method); err != nil {
		return nil, err
	}
	if o.Shape, err = clust.ParseShape(c.Shape); err != nil {
		return nil, err
	}
	if c.EnergyEV > 0 {
		o.EnergyEV = c.EnergyEV
	}
	if c.Cpus > 0 {
		o.Cpus = c.Cpus
	}
	o.CopyUnmatched = c.CopyUnmatched
	return o, nil
}

var (
	flagConfig        string
	flagDir           string
	flagMethod        string
	flagShape         string
	flagEnergy        float64
	flagCpus          int
	flagCopyUnmatched string
	flagOut           string
	flagVerbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "goclust",
	Short: "Batch cluster-size, coordination, volume and charge analysis of PDB structures",
	Long: `goclust processes a directory of PDB structure files, one chemical
cluster per file, and aggregates cluster size, coordination numbers,
volume and net formal charge into size-binned statistics for
scattering-intensity modeling.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "YAML configuration file")
	rootCmd.Flags().StringVarP(&flagDir, "dir", "d", "", "directory with .pdb/.pdb.gz files (overrides config)")
	rootCmd.Flags().StringVar(&flagMethod, "method", "", "volume method: ionic_radius, radius_of_gyration, convex_hull, scattering, connected_hull")
	rootCmd.Flags().StringVar(&flagShape, "shape", "", "shape for radius_of_gyration: sphere or ellipsoid")
	rootCmd.Flags().Float64Var(&flagEnergy, "energy", 0, "X-ray energy in eV for the scattering method")
	rootCmd.Flags().IntVar(&flagCpus, "cpus", 0, "worker count (default: cores-1)")
	rootCmd.Flags().StringVar(&flagCopyUnmatched, "copy-unmatched", "", "copy files without target atoms to this directory")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write per-size statistics to this CSV file")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagDir != "" {
		cfg.Directory = flagDir
	}
	if flagMethod != "" {
		cfg.Method = flagMethod
	}
	if flagShape != "" {
		cfg.Shape = flagShape
	}
	if flagEnergy > 0 {
		cfg.EnergyEV = flagEnergy
	}
	if flagCpus > 0 {
		cfg.Cpus = flagCpus
	}
	if flagCopyUnmatched != "" {
		cfg.CopyUnmatched = flagCopyUnmatched
	}
	if cfg.Directory == "" {
		return fmt.Errorf("no structure directory given (use --dir or the config file)")
	}

	opts, err := cfg.options()
	if err != nil {
		return err
	}
	loader := pdb.New(cfg.CoreResidues, cfg.ShellResidues)
	analyzer, err := clust.NewAnalyzer(loader, atomdata.New(), opts)
	if err != nil {
		return err
	}
	res, err := analyzer.AnalyzeDir(cfg.Directory)
	if err != nil {
		return err
	}
	stats := clust.Aggregate(res.Records)
	report(cmd, res, stats)
	if flagOut != "" {
		if err := writeCSV(flagOut, stats); err != nil {
			return err
		}
		cmd.Printf("Per-size statistics written to %s\n", flagOut)
	}
	return nil
}

func report(cmd *cobra.Command, res *clust.BatchResult, stats *clust.BatchStats) {
	cmd.Printf("Clusters measured: %d  (unmatched: %d, failed: %d)\n\n",
		len(res.Records), len(res.Unmatched), len(res.Failed))
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "size\tcount\t<V> (A^3)\tstd V\tphi (%)\tphi*<Vc>\t<charge>")
	for _, size := range stats.Sizes {
		s := stats.BySize[size]
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%+.2f\n",
			s.Size, s.Count, s.MeanVolume, s.StdVolume,
			s.VolumeFraction*100, s.PhiVc, s.MeanCharge)
	}
	w.Flush()
	if len(stats.Sizes) > 0 {
		cmd.Printf("\nMode cluster size (max scattering contribution): %d\n", stats.Mode)
	}
	if len(stats.WeightedCoordination) > 0 {
		cmd.Printf("\nWeighted coordination numbers:\n")
		for pair, cn := range stats.WeightedCoordination {
			cmd.Printf("  %s: %.2f\n", pair, cn)
		}
	}
}

func writeCSV(path string, stats *clust.BatchStats) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"size", "count", "mean_volume", "std_volume",
		"volume_fraction", "phi_vc", "mean_charge", "std_charge"}); err != nil {
		return err
	}
	for _, size := range stats.Sizes {
		s := stats.BySize[size]
		rec := []string{
			strconv.Itoa(s.Size),
			strconv.Itoa(s.Count),
			strconv.FormatFloat(s.MeanVolume, 'g', -1, 64),
			strconv.FormatFloat(s.StdVolume, 'g', -1, 64),
			strconv.FormatFloat(s.VolumeFraction, 'g', -1, 64),
			strconv.FormatFloat(s.PhiVc, 'g', -1, 64),
			strconv.FormatFloat(s.MeanCharge, 'g', -1, 64),
			strconv.FormatFloat(s.StdCharge, 'g', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
