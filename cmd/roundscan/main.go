// Command roundscan computes secure Poseidon round numbers for a chosen
// field and prints the resulting profile with its cost metrics. With -plot
// it additionally renders the secure region of the (full, partial) grid as
// an interactive HTML scatter, colored by S-box cost.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	rounds "github.com/vocdoni/poseidon-rounds"
)

func main() {
	curve := flag.String("curve", "bls12-377", "preset scalar field: bls12-377|bn254|bls12-381 (ignored when -p is set)")
	pHex := flag.String("p", "", "explicit prime modulus, hex (overrides -curve)")
	width := flag.Int("t", 3, "state width")
	margin := flag.Int("m", 128, "security margin, bits")
	alpha := flag.Int("alpha", 0, "s-box exponent (-1 for inverse); 0 keeps the preset's exponent")
	secMargin := flag.Bool("margin", true, "apply the +2 full / +7.5% partial security margin")
	plotPath := flag.String("plot", "", "write an HTML cost-landscape scatter to this path")
	flag.Parse()

	prof, err := buildProfile(*curve, *pHex, *width, *margin, *alpha)
	if err != nil {
		log.Fatalf("roundscan: %v", err)
	}

	r, found := rounds.FindRoundNumbers(prof.Modulus, prof.Width, prof.Margin, prof.Alpha, *secMargin)
	if !found {
		log.Fatalf("roundscan: no secure round profile in the search grid for t=%d M=%d alpha=%d", prof.Width, prof.Margin, prof.Alpha)
	}

	hp := rounds.HashProfile{Profile: prof, FullRounds: r.Full, PartialRounds: r.Partial, SecMargin: *secMargin}
	if err := hp.Validate(); err != nil {
		log.Fatalf("roundscan: %v", err)
	}

	bits := prof.Modulus.BitLen()
	fmt.Printf("modulus bits:   %d\n", bits)
	fmt.Printf("width t:        %d\n", prof.Width)
	fmt.Printf("margin M:       %d\n", prof.Margin)
	fmt.Printf("alpha:          %d\n", prof.Alpha)
	fmt.Printf("full rounds:    %d\n", r.Full)
	fmt.Printf("partial rounds: %d\n", r.Partial)
	fmt.Printf("s-box cost:     %d\n", rounds.SBoxCost(r.Full, r.Partial, prof.Width))
	fmt.Printf("size cost:      %d\n", rounds.SizeCost(r.Full, r.Partial, bits*prof.Width, prof.Width))
	fmt.Printf("depth cost:     %d\n", rounds.DepthCost(r.Full, r.Partial))

	if *plotPath != "" {
		if err := writeCostPlot(*plotPath, prof, r); err != nil {
			log.Fatalf("roundscan: plot: %v", err)
		}
		fmt.Printf("cost landscape: %s\n", *plotPath)
	}
}

func buildProfile(curve, pHex string, width, margin, alpha int) (rounds.Profile, error) {
	var prof rounds.Profile
	switch strings.ToLower(curve) {
	case "bls12-377":
		prof = rounds.BLS12377Profile(width)
	case "bn254":
		prof = rounds.BN254Profile(width)
	case "bls12-381":
		prof = rounds.BLS12381Profile(width)
	default:
		if pHex == "" {
			return rounds.Profile{}, fmt.Errorf("unknown curve %q and no -p modulus given", curve)
		}
	}
	if pHex != "" {
		p, ok := new(big.Int).SetString(strings.TrimPrefix(pHex, "0x"), 16)
		if !ok {
			return rounds.Profile{}, fmt.Errorf("invalid hex modulus %q", pHex)
		}
		prof = rounds.Profile{Modulus: p, Width: width, Margin: margin, Alpha: 5}
	}
	prof.Width = width
	prof.Margin = margin
	if alpha != 0 {
		prof.Alpha = alpha
	}
	return prof, nil
}

// writeCostPlot renders every secure grid point as (full, partial, cost),
// with the returned profile highlighted in its own series.
func writeCostPlot(path string, prof rounds.Profile, picked rounds.Rounds) error {
	var items []opts.ScatterData
	minCost, maxCost := 1<<31, 0
	for rP := 1; rP <= 500; rP++ {
		for rF := 4; rF <= 100; rF += 2 {
			if !rounds.SecureRef(prof.Modulus, prof.Width, prof.Margin, rF, rP, prof.Alpha) {
				continue
			}
			cost := rounds.SBoxCost(rF, rP, prof.Width)
			if cost < minCost {
				minCost = cost
			}
			if cost > maxCost {
				maxCost = cost
			}
			items = append(items, opts.ScatterData{Value: []interface{}{rF, rP, cost}})
		}
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Poseidon secure round profiles",
			Subtitle: fmt.Sprintf("t=%d, M=%d, alpha=%d, %d-bit field", prof.Width, prof.Margin, prof.Alpha, prof.Modulus.BitLen()),
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "roundscan", Width: "1200px", Height: "700px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "full rounds", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "partial rounds", Type: "value"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:       "continuous",
			Dimension:  "2",
			Min:        float32(minCost),
			Max:        float32(maxCost),
			Calculable: opts.Bool(true),
			Left:       "left",
			Top:        "middle",
			InRange:    &opts.VisualMapInRange{Color: []string{"#22c55e", "#eab308", "#ef4444"}},
		}),
	)
	sc.AddSeries("secure", items,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 5}),
	)
	sc.AddSeries("selected", []opts.ScatterData{{Value: []interface{}{picked.Full, picked.Partial, rounds.SBoxCost(picked.Full, picked.Partial, prof.Width)}}},
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "diamond", SymbolSize: 14}),
	)

	page := components.NewPage().SetPageTitle("roundscan")
	page.AddCharts(sc)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
