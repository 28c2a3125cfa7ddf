package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mapleforkbistro/bistro-api/internal/client"
)

func main() {
	var (
		server   = flag.String("server", "http://localhost:8080", "reservations API base URL")
		name     = flag.String("name", "", "guest name")
		email    = flag.String("email", "", "guest email")
		phone    = flag.String("phone", "", "guest phone")
		party    = flag.Int("party", 2, "party size")
		date     = flag.String("date", "", "date and time, e.g. 2026-09-12T19:30 (time optional)")
		requests = flag.String("requests", "", "special requests")
	)
	flag.Parse()

	form := client.Form{
		GuestName:       *name,
		GuestEmail:      *email,
		GuestPhone:      *phone,
		PartySize:       *party,
		DateTime:        *date,
		SpecialRequests: *requests,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := client.New(*server).Submit(ctx, form)
	if err != nil {
		var fieldErrs client.FieldErrors
		if errors.As(err, &fieldErrs) {
			fmt.Fprintln(os.Stderr, "Please fix the following:")
			for field, msg := range fieldErrs {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
			}
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	fmt.Println(result.Message)
	fmt.Printf("Reservation for %s on %s\n",
		result.GuestName,
		result.When.Format("Monday, January 2 at 3:04 PM"),
	)
}
