package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	reservationHotel    string
	reservationCustomer string
	reservationRooms    int
)

var reservationCmd = &cobra.Command{
	Use:               "reservation",
	Short:             "Manage reservations",
	Long:              `Book rooms for customers and cancel existing bookings.`,
	PersistentPreRunE: setup,
}

var reservationBookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book rooms at a hotel",
	Long: `Book rooms at a hotel for a customer and print the reservation ID.

The booking is refused when the hotel or customer does not exist, or
when the hotel does not have enough rooms left. Availability counts
only active reservations; cancelled ones do not hold rooms.`,
	RunE: runReservationBook,
}

var reservationCancelCmd = &cobra.Command{
	Use:   "cancel <reservation-id>",
	Short: "Cancel a reservation",
	Long: `Cancel a reservation and release its rooms.

The record is kept with status "cancelled"; reservations are never
deleted. Cancelling an already-cancelled reservation fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runReservationCancel,
}

func init() {
	rootCmd.AddCommand(reservationCmd)
	reservationCmd.AddCommand(reservationBookCmd, reservationCancelCmd)

	reservationBookCmd.Flags().StringVar(&reservationHotel, "hotel", "", "Hotel ID")
	reservationBookCmd.Flags().StringVar(&reservationCustomer, "customer", "", "Customer ID")
	reservationBookCmd.Flags().IntVar(&reservationRooms, "rooms", 0, "Number of rooms to book (must be positive)")
}

func runReservationBook(cmd *cobra.Command, args []string) error {
	reservation, err := svc.CreateReservation(reservationHotel, reservationCustomer, reservationRooms)
	if err != nil {
		return err
	}

	fmt.Printf("Created reservation %s\n", reservation.ReservationID)
	return nil
}

func runReservationCancel(cmd *cobra.Command, args []string) error {
	if err := svc.CancelReservation(args[0]); err != nil {
		return err
	}

	fmt.Printf("Cancelled reservation %s\n", args[0])
	return nil
}
