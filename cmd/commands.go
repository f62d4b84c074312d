package main

import (
	"hospital-dashboard/cmd/bootstrap"
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")

			return withApp(cmd, func(app *bootstrap.App) (any, error) {
				resp, err := app.Auth.Login(cmd.Context(), &dto.LoginRequest{Username: username, Password: password})
				if err != nil {
					return nil, err
				}
				return resp.User, nil
			})
		},
	}
	cmd.Flags().String("username", "", "Username")
	cmd.Flags().String("password", "", "Password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App) (any, error) {
				return nil, app.Auth.Logout(cmd.Context())
			})
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App) (any, error) {
				if !app.Auth.IsAuthenticated(cmd.Context()) {
					return nil, errNotSignedIn
				}
				return app.Auth.GetCurrentUser(cmd.Context()), nil
			})
		},
	}
}

func patientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "Patient records",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			gender, _ := cmd.Flags().GetString("gender")
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")

			return withApp(cmd, func(app *bootstrap.App) (any, error) {
				return app.Patients.GetPatients(cmd.Context(), &entity.PatientFilter{
					Search: search,
					Gender: gender,
					Page:   page,
					Limit:  limit,
				})
			})
		},
	}
	listCmd.Flags().String("search", "", "Name or email substring")
	listCmd.Flags().String("gender", "", "male, female or other")
	listCmd.Flags().Int("page", entity.DefaultPage, "Page number")
	listCmd.Flags().Int("limit", entity.DefaultLimit, "Page size")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get [id]",
		Short: "Show one patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App) (any, error) {
				return app.Patients.GetPatient(cmd.Context(), args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a patient (mock mode: not kept after the command exits)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App) (any, error) {
				warnNotKept(cmd, app)
				if err := app.Patients.DeletePatient(cmd.Context(), args[0]); err != nil {
					return nil, err
				}
				return dto.MessageResponse{Message: "Patient deleted successfully"}, nil
			})
		},
	})

	return cmd
}

func doctorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "Doctor directory",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			specialization, _ := cmd.Flags().GetString("specialization")
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")

			return withApp(cmd, func(app *bootstrap.App) (any, error) {
				return app.Doctors.GetDoctors(cmd.Context(), &entity.DoctorFilter{
					Search:         search,
					Specialization: specialization,
					Page:           page,
					Limit:          limit,
				})
			})
		},
	}
	listCmd.Flags().String("search", "", "Name or specialization substring")
	listCmd.Flags().String("specialization", "", "Exact specialization")
	listCmd.Flags().Int("page", entity.DefaultPage, "Page number")
	listCmd.Flags().Int("limit", entity.DefaultLimit, "Page size")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get [id]",
		Short: "Show one doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App) (any, error) {
				return app.Doctors.GetDoctor(cmd.Context(), args[0])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "stats [id]",
		Short: "Show a doctor's appointment statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App) (any, error) {
				return app.Doctors.GetDoctorStats(cmd.Context(), args[0])
			})
		},
	})

	return cmd
}

func appointmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "Appointment schedule",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			status, _ := cmd.Flags().GetString("status")
			date, _ := cmd.Flags().GetString("date")
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")

			return withApp(cmd, func(app *bootstrap.App) (any, error) {
				return app.Appointments.GetAppointments(cmd.Context(), &entity.AppointmentFilter{
					Search: search,
					Status: status,
					Date:   date,
					Page:   page,
					Limit:  limit,
				})
			})
		},
	}
	listCmd.Flags().String("search", "", "Patient or doctor name substring")
	listCmd.Flags().String("status", "", "Appointment status")
	listCmd.Flags().String("date", "", "Date (YYYY-MM-DD)")
	listCmd.Flags().Int("page", entity.DefaultPage, "Page number")
	listCmd.Flags().Int("limit", entity.DefaultLimit, "Page size")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "today",
		Short: "List today's appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App) (any, error) {
				return app.Appointments.GetTodayAppointments(cmd.Context())
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "upcoming",
		Short: "List upcoming appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App) (any, error) {
				return app.Appointments.GetUpcomingAppointments(cmd.Context())
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status [id] [status]",
		Short: "Change an appointment's status (mock mode: not kept after the command exits)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App) (any, error) {
				warnNotKept(cmd, app)
				return app.Appointments.UpdateAppointmentStatus(cmd.Context(), args[0], args[1])
			})
		},
	})

	return cmd
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show dashboard stats, recent appointments and the weekly chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App) (any, error) {
				return app.Dashboard.GetOverview(cmd.Context())
			})
		},
	}
}
