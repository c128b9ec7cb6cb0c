package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreyes/roomledger/models"
)

var (
	hotelName  string
	hotelCity  string
	hotelRooms int
)

var hotelCmd = &cobra.Command{
	Use:               "hotel",
	Short:             "Manage hotels",
	Long:              `Create, modify, delete, and inspect hotels.`,
	PersistentPreRunE: setup,
}

var hotelAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new hotel",
	Long: `Register a new hotel and print its generated ID.

The room count must be positive; name and city are free-form text.`,
	RunE: runHotelAdd,
}

var hotelRmCmd = &cobra.Command{
	Use:   "rm <hotel-id>",
	Short: "Delete a hotel",
	Long:  `Delete a hotel. Refused while the hotel has active reservations.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHotelRm,
}

var hotelSetCmd = &cobra.Command{
	Use:   "set <hotel-id>",
	Short: "Update hotel fields",
	Long: `Update one or more hotel fields. Only the flags given change;
omitted fields keep their stored values.`,
	Args: cobra.ExactArgs(1),
	RunE: runHotelSet,
}

var hotelShowCmd = &cobra.Command{
	Use:   "show <hotel-id>",
	Short: "Print a hotel record as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runHotelShow,
}

var hotelInfoCmd = &cobra.Command{
	Use:   "info <hotel-id>",
	Short: "Print a one-line hotel summary",
	Long:  `Print a human-readable summary including current room availability.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHotelInfo,
}

func init() {
	rootCmd.AddCommand(hotelCmd)
	hotelCmd.AddCommand(hotelAddCmd, hotelRmCmd, hotelSetCmd, hotelShowCmd, hotelInfoCmd)

	hotelAddCmd.Flags().StringVar(&hotelName, "name", "", "Hotel name")
	hotelAddCmd.Flags().StringVar(&hotelCity, "city", "", "City the hotel is in")
	hotelAddCmd.Flags().IntVar(&hotelRooms, "rooms", 0, "Total number of rooms (must be positive)")

	hotelSetCmd.Flags().String("name", "", "New hotel name")
	hotelSetCmd.Flags().String("city", "", "New city")
	hotelSetCmd.Flags().Int("rooms", 0, "New total number of rooms")
}

func runHotelAdd(cmd *cobra.Command, args []string) error {
	hotel, err := svc.CreateHotel(hotelName, hotelCity, hotelRooms)
	if err != nil {
		return err
	}

	fmt.Printf("Created hotel %s\n", hotel.HotelID)
	return nil
}

func runHotelRm(cmd *cobra.Command, args []string) error {
	if err := svc.DeleteHotel(args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted hotel %s\n", args[0])
	return nil
}

func runHotelSet(cmd *cobra.Command, args []string) error {
	var upd models.HotelUpdate
	if cmd.Flags().Changed("name") {
		v, _ := cmd.Flags().GetString("name")
		upd.Name = &v
	}
	if cmd.Flags().Changed("city") {
		v, _ := cmd.Flags().GetString("city")
		upd.City = &v
	}
	if cmd.Flags().Changed("rooms") {
		v, _ := cmd.Flags().GetInt("rooms")
		upd.TotalRooms = &v
	}

	if err := svc.ModifyHotel(args[0], upd); err != nil {
		return err
	}

	fmt.Printf("Updated hotel %s\n", args[0])
	return nil
}

func runHotelShow(cmd *cobra.Command, args []string) error {
	hotel, err := svc.GetHotel(args[0])
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(hotel, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

func runHotelInfo(cmd *cobra.Command, args []string) error {
	info, err := svc.HotelInfo(args[0])
	if err != nil {
		return err
	}

	fmt.Println(info)
	return nil
}
