package app

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/specialistvlad/xrdcollect/internal/model"
	"github.com/specialistvlad/xrdcollect/internal/registry"
)

// WriteReport renders the registry as three tables: setups, points with
// their per-setup scan flags, and the collection queue.
func WriteReport(w io.Writer, reg *registry.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	setups := reg.ExperimentSetups()
	fmt.Fprintf(tw, "Experiment setups: %d\n", len(setups))
	if len(setups) > 0 {
		fmt.Fprintln(tw, "ID\tNAME\tDETECTOR X\tDETECTOR Z\tOMEGA START\tOMEGA END\tOMEGA STEP\tTIME/STEP\tTOTAL EXPOSURE")
		for _, s := range setups {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				s.ID(), s.Name,
				num(s.DetectorPosX), num(s.DetectorPosZ),
				num(s.OmegaStart), num(s.OmegaEnd), num(s.OmegaStep),
				num(s.TimePerStep), exposure(s))
		}
	}
	fmt.Fprintln(tw)

	points := reg.SamplePoints()
	fmt.Fprintf(tw, "Sample points: %d\n", len(points))
	if len(points) > 0 {
		fmt.Fprint(tw, "ID\tNAME\tX\tY\tZ")
		for _, name := range reg.ExperimentSetupNames() {
			fmt.Fprintf(tw, "\t%s", name)
		}
		fmt.Fprintln(tw)

		state := reg.ExperimentState()
		for i, p := range points {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s", p.ID, p.Name, num(p.X), num(p.Y), num(p.Z))
			for _, flags := range state[i] {
				fmt.Fprintf(tw, "\t%s", flagLabel(flags))
			}
			fmt.Fprintln(tw)
		}
	}
	fmt.Fprintln(tw)

	queue := reg.Collections()
	fmt.Fprintf(tw, "Collection queue: %d\n", len(queue))
	if len(queue) > 0 {
		fmt.Fprintln(tw, "#\tPOINT\tSETUP\tMODE\tEXPOSURE")
		for i, c := range queue {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, c.Point.Name, c.Setup.Name, c.Mode, exposure(c.Setup))
		}
	}

	return tw.Flush()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func exposure(s *model.ExperimentSetup) string {
	total, err := s.TotalExposureTime()
	if err != nil {
		return "undefined"
	}
	return num(total) + "s"
}

func flagLabel(f model.ScanFlags) string {
	switch {
	case f.Step && f.Wide:
		return "step+wide"
	case f.Step:
		return "step"
	case f.Wide:
		return "wide"
	default:
		return "-"
	}
}
