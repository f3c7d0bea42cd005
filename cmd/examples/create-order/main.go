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
	"fmt"
	"log"
	"time"

	"github.com/daniilr/yandex-delivery-go/pkg/client"
	"github.com/daniilr/yandex-delivery-go/pkg/config"
	"github.com/google/uuid"
)

func main() {
	fmt.Println("Yandex Delivery Go - Create Order Example")
	fmt.Println("=========================================")

	// Load configuration from the environment
	fmt.Println("\n1. Loading configuration from environment...")
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Create the client
	fmt.Println("\n2. Creating delivery client...")
	c, err := client.New(cfg, nil)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	// Build the order with a unique shop-side order number
	fmt.Println("\n3. Building the order...")
	orderNum := "ORD-" + uuid.NewString()
	fmt.Printf("   Order number: %s\n", orderNum)

	order := client.Order{
		Num:    orderNum,
		Weight: 2.5,
		Length: 30,
		Width:  20,
		Height: 10,
		Recipient: client.Recipient{
			FirstName: "Иван",
			LastName:  "Петров",
			Phone:     "+79990000000",
			Email:     "ivan@example.com",
		},
		DeliveryPoint: client.DeliveryPoint{
			City:   "Москва",
			Street: "Тверская",
			House:  "1",
			Index:  "125009",
		},
		Items: []client.OrderItem{
			{Article: "SKU-001", Name: "Коробка", Quantity: 1, Cost: 990, VATValue: 20},
		},
	}

	// Register the order; order_requisite and order_warehouse default to
	// the first configured IDs
	fmt.Println("\n4. Creating the order...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := c.CreateOrder(ctx, order)
	if err != nil {
		log.Fatalf("Failed to create order: %v", err)
	}

	fmt.Println("\n5. Order created:")
	fmt.Printf("   %v\n", resp)
}
