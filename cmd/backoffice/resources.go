package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MbolafyDev/go-backoffice/services"
)

func clientsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Customer records",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := a.api.Clients.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range clients {
				fmt.Printf("%6d  %-30s  %s\n", c.ID, c.Name, c.Contact)
			}
			return nil
		},
	})
	return cmd
}

func ordersCmd(a *app) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Sales orders",
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List orders for the cash desk view",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			if page > 0 {
				params.Set("page", strconv.Itoa(page))
			}
			res, err := a.api.Cashdesk.ListOrders(cmd.Context(), params)
			if err != nil {
				return err
			}
			for _, o := range res.Results {
				fmt.Printf("%6d  %-12s  %-10s  %-25s  %s\n",
					o.ID, o.Status, o.PaymentStatus, o.ClientName, o.OrderTotal)
			}
			fmt.Printf("%d order(s) total\n", res.Count)
			return nil
		},
	}
	list.Flags().IntVar(&page, "page", 0, "result page")
	cmd.AddCommand(list)
	return cmd
}

func invoiceCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "invoice <order-id>",
		Short: "Download an order's invoice PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			data, err := a.api.Invoices.PDF(cmd.Context(), orderID, true)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("facture-%d.pdf", orderID)
			}
			if err := services.SaveFile(out, data); err != nil {
				return err
			}
			fmt.Printf("Saved %s (%d bytes)\n", out, len(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default facture-<id>.pdf)")
	return cmd
}
