// Copyright (C) 2025 yandex-delivery-go contributors
//
// This file is part of yandex-delivery-go.
//
// yandex-delivery-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// yandex-delivery-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with yandex-delivery-go.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/daniilr/yandex-delivery-go/pkg/client"
	"github.com/daniilr/yandex-delivery-go/pkg/config"
)

func main() {
	fmt.Println("Yandex Delivery Go - Quote Delivery Example")
	fmt.Println("===========================================")

	// Load configuration from the environment
	fmt.Println("\n1. Loading configuration from environment...")
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	fmt.Printf("   Client ID: %d\n", cfg.ClientID)
	fmt.Printf("   Sender ID: %d\n", cfg.SenderID)

	// Create the client
	fmt.Println("\n2. Creating delivery client...")
	c, err := client.New(cfg, nil)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	fmt.Printf("   User-Agent: %s\n", c.UserAgent())

	// Quote delivery options for a parcel
	fmt.Println("\n3. Searching delivery options...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := c.SearchDeliveryList(ctx, client.SearchOptions{
		CityFrom: "Москва",
		CityTo:   "Санкт-Петербург",
		Weight:   1.5,
		Width:    10,
		Height:   20,
		Length:   30,
	})
	if err != nil {
		var protoErr *client.ProtocolError
		if errors.As(err, &protoErr) {
			log.Fatalf("Server rejected the request: %s", protoErr.Code)
		}
		log.Fatalf("Request failed: %v", err)
	}

	fmt.Println("\n4. Delivery options:")
	fmt.Printf("   %v\n", resp)
}
