package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreyes/roomledger/models"
)

var (
	customerName  string
	customerEmail string
)

var customerCmd = &cobra.Command{
	Use:               "customer",
	Short:             "Manage customers",
	Long:              `Create, modify, delete, and inspect customers.`,
	PersistentPreRunE: setup,
}

var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new customer",
	Long: `Register a new customer and print their generated ID.

Name and email are free-form text; the email is stored as given.`,
	RunE: runCustomerAdd,
}

var customerRmCmd = &cobra.Command{
	Use:   "rm <customer-id>",
	Short: "Delete a customer",
	Long:  `Delete a customer. Refused while the customer has active reservations.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerRm,
}

var customerSetCmd = &cobra.Command{
	Use:   "set <customer-id>",
	Short: "Update customer fields",
	Long: `Update one or more customer fields. Only the flags given change;
omitted fields keep their stored values.`,
	Args: cobra.ExactArgs(1),
	RunE: runCustomerSet,
}

var customerShowCmd = &cobra.Command{
	Use:   "show <customer-id>",
	Short: "Print a customer record as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerShow,
}

var customerInfoCmd = &cobra.Command{
	Use:   "info <customer-id>",
	Short: "Print a one-line customer summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerInfo,
}

func init() {
	rootCmd.AddCommand(customerCmd)
	customerCmd.AddCommand(customerAddCmd, customerRmCmd, customerSetCmd, customerShowCmd, customerInfoCmd)

	customerAddCmd.Flags().StringVar(&customerName, "name", "", "Customer name")
	customerAddCmd.Flags().StringVar(&customerEmail, "email", "", "Customer email address")

	customerSetCmd.Flags().String("name", "", "New customer name")
	customerSetCmd.Flags().String("email", "", "New email address")
}

func runCustomerAdd(cmd *cobra.Command, args []string) error {
	customer, err := svc.CreateCustomer(customerName, customerEmail)
	if err != nil {
		return err
	}

	fmt.Printf("Created customer %s\n", customer.CustomerID)
	return nil
}

func runCustomerRm(cmd *cobra.Command, args []string) error {
	if err := svc.DeleteCustomer(args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted customer %s\n", args[0])
	return nil
}

func runCustomerSet(cmd *cobra.Command, args []string) error {
	var upd models.CustomerUpdate
	if cmd.Flags().Changed("name") {
		v, _ := cmd.Flags().GetString("name")
		upd.Name = &v
	}
	if cmd.Flags().Changed("email") {
		v, _ := cmd.Flags().GetString("email")
		upd.Email = &v
	}

	if err := svc.ModifyCustomer(args[0], upd); err != nil {
		return err
	}

	fmt.Printf("Updated customer %s\n", args[0])
	return nil
}

func runCustomerShow(cmd *cobra.Command, args []string) error {
	customer, err := svc.GetCustomer(args[0])
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(customer, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

func runCustomerInfo(cmd *cobra.Command, args []string) error {
	info, err := svc.CustomerInfo(args[0])
	if err != nil {
		return err
	}

	fmt.Println(info)
	return nil
}
