package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"

	"BaristaSimulator/internal/asset"
	"BaristaSimulator/internal/viewpoint"
)

func newViewsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "views",
		Short: "Edit the persisted viewpoint set without opening the window",
	}
	cmd.AddCommand(
		newViewsListCommand(opts),
		newViewsResetCommand(opts),
		newViewsSetCommand(opts),
		newViewsRemoveCommand(opts),
	)
	return cmd
}

func (o *rootOptions) viewpointFile() (*asset.File, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, err
	}
	return asset.NewFile(cfg.Camera.ViewpointFile), nil
}

func newViewsListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the persisted viewpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := opts.viewpointFile()
			if err != nil {
				return err
			}
			views, err := file.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(views) == 0 {
				fmt.Fprintf(out, "%s holds no viewpoints, the defaults apply:\n", file.Path())
				views = viewpoint.Defaults()
			}
			for i, v := range views {
				fmt.Fprintf(out, "%d. %s\n", i+1, v)
			}
			return nil
		},
	}
}

func newViewsResetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Overwrite the persisted set with the default viewpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := opts.viewpointFile()
			if err != nil {
				return err
			}
			if err := file.Save(viewpoint.Defaults()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reset %s to %d default viewpoints\n", file.Path(), len(viewpoint.Defaults()))
			return nil
		},
	}
}

func toVec3(flag string, values []float32) (mgl32.Vec3, error) {
	if len(values) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("--%s wants 3 values, got %d", flag, len(values))
	}
	return mgl32.Vec3{values[0], values[1], values[2]}, nil
}

func newViewsSetCommand(opts *rootOptions) *cobra.Command {
	var (
		position []float32
		rotation []float32
		fov      float32
	)

	cmd := &cobra.Command{
		Use:   "set NAME",
		Short: "Add a viewpoint or update an existing one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := opts.viewpointFile()
			if err != nil {
				return err
			}
			name := args[0]
			flags := cmd.Flags()

			_, err = asset.Edit(file, func(s *viewpoint.Store) error {
				v, _, ok := s.Lookup(name)
				if !ok {
					v = viewpoint.Viewpoint{Name: name, FieldOfView: viewpoint.DEFAULT_FIELD_OF_VIEW}
				}
				if flags.Changed("pos") {
					if v.Position, err = toVec3("pos", position); err != nil {
						return err
					}
				}
				if flags.Changed("rot") {
					if v.Rotation, err = toVec3("rot", rotation); err != nil {
						return err
					}
				}
				if flags.Changed("fov") {
					v.FieldOfView = fov
				}
				v.FieldOfView = viewpoint.ClampFieldOfView(v.FieldOfView)

				if s.Put(v) {
					fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", v)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", v)
				}
				return nil
			})
			return err
		},
	}

	cmd.Flags().Float32SliceVar(&position, "pos", nil, "position x,y,z in metres")
	cmd.Flags().Float32SliceVar(&rotation, "rot", nil, "rotation pitch,yaw,roll in degrees")
	cmd.Flags().Float32Var(&fov, "fov", viewpoint.DEFAULT_FIELD_OF_VIEW, "vertical field of view in degrees (20-120)")
	return cmd
}

func newViewsRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete a viewpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := opts.viewpointFile()
			if err != nil {
				return err
			}
			_, err = asset.Edit(file, func(s *viewpoint.Store) error {
				if !s.Remove(args[0]) {
					return fmt.Errorf("no viewpoint named %q", args[0])
				}
				if s.Len() == 0 {
					return fmt.Errorf("refusing to remove the last viewpoint %q", args[0])
				}
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}
}
