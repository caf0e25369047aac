package cmd

// WorkoutsCmd manages workouts
type WorkoutsCmd struct {
	Del    WorkoutsDelCmd    `cmd:"del" help:"Delete a workout"`
	Export WorkoutsExportCmd `cmd:"export" help:"Export workouts to a YAML file"`
	Import WorkoutsImportCmd `cmd:"import" help:"Import workouts from a YAML file"`
	List   WorkoutsListCmd   `cmd:"list" help:"List all workouts" default:"1"`
	Pin    WorkoutsPinCmd    `cmd:"pin" help:"Toggle workout pin"`
	Show   WorkoutsShowCmd   `cmd:"show" help:"Show a specific workout"`
}
