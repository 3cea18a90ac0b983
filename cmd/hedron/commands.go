package main

import (
	"fmt"
	"strings"

	"github.com/akmonengine/hedron"
	"github.com/akmonengine/hedron/geom"
	"github.com/akmonengine/hedron/mesh"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Print the dimension and bounds of every brush",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := a.load(args[0])
			if err != nil {
				return err
			}

			invalid := 0
			for _, brush := range world.Brushes {
				bounds := brush.Bounds()
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%v\t%v\n", brush.Name,
					brush.Geometry.Dimension(), bounds.Min, bounds.Max)
				if brush.Geometry.Dimension() == mesh.DimensionInvalid {
					invalid++
				}
			}
			if invalid > 0 {
				return errors.Errorf("%d invalid brushes", invalid)
			}
			return nil
		},
	}
}

func (a *app) overlapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overlaps FILE",
		Short: "List every pair of intersecting brushes",
		Long: `
Lists every pair of brushes whose geometries intersect, in file order. Pairs of two
locked brushes are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := a.load(args[0])
			if err != nil {
				return err
			}

			for _, pair := range world.Detect() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", pair.BrushA.Name, pair.BrushB.Name)
			}
			return nil
		},
	}
}

func (a *app) selectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select FILE",
		Short: "List the brushes touching or inside a volume brush",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("volume")
			inside, _ := cmd.Flags().GetBool("inside")

			world, err := a.load(args[0])
			if err != nil {
				return err
			}

			var volume *hedron.Brush
			candidates := make([]*hedron.Brush, 0, len(world.Brushes))
			for _, brush := range world.Brushes {
				if brush.Name == name {
					volume = brush
					continue
				}
				candidates = append(candidates, brush)
			}
			if volume == nil {
				return errors.Errorf("no brush named %q", name)
			}

			workers := a.conf.GetInt("workers")
			var selected []*hedron.Brush
			if inside {
				selected, err = hedron.SelectInside(cmd.Context(), volume.Geometry, candidates, workers)
			} else {
				selected, err = hedron.SelectTouching(cmd.Context(), volume.Geometry, candidates, workers)
			}
			if err != nil {
				return errors.Wrapf(err, "while selecting with %q", name)
			}

			a.logger.Debug("selection", zap.String("volume", name), zap.Bool("inside", inside),
				zap.Int("selected", len(selected)))
			for _, brush := range selected {
				fmt.Fprintln(cmd.OutOrStdout(), brush.Name)
			}
			return nil
		},
	}
	cmd.Flags().String("volume", "", "Name of the brush used as selection volume.")
	cmd.Flags().Bool("inside", false, "Select the brushes entirely inside the volume instead of touching it.")
	_ = cmd.MarkFlagRequired("volume")
	return cmd
}

func (a *app) pickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick FILE",
		Short: "Print the first brush hit by a ray",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := vectorFlag(cmd.Flags(), "from")
			if err != nil {
				return err
			}
			to, err := vectorFlag(cmd.Flags(), "to")
			if err != nil {
				return err
			}
			if from.ApproxEqual(to) {
				return errors.New("--from and --to must differ")
			}

			world, err := a.load(args[0])
			if err != nil {
				return err
			}

			hit, ok := world.Pick(geom.NewRay(from, to))
			if !ok {
				return errors.New("nothing hit")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%g\n", hit.Brush.Name, hit.Face, hit.Distance)
			return nil
		},
	}
	cmd.Flags().Float64Slice("from", nil, "Ray origin as x,y,z.")
	cmd.Flags().Float64Slice("to", nil, "A point the ray passes through, as x,y,z.")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func vectorFlag(flags *flag.FlagSet, name string) (mgl64.Vec3, error) {
	values, err := flags.GetFloat64Slice(name)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	if len(values) != 3 {
		return mgl64.Vec3{}, errors.Errorf("--%s expects x,y,z, got %s", name,
			strings.Trim(fmt.Sprint(values), "[]"))
	}
	return mgl64.Vec3{values[0], values[1], values[2]}, nil
}
