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

package client

import (
	"context"
	"fmt"

	"github.com/daniilr/yandex-delivery-go/pkg/param"
)

// Endpoint wrappers. These are thin glue over Request: they translate typed
// arguments into a parameter tree and rely on the zero-value filter to drop
// whatever the caller left unset.
// API reference: http://docs.yandexdelivery.apiary.io/

// GetSenderInfo fetches the shop information for the configured account.
func (c *Client) GetSenderInfo(ctx context.Context) (Response, error) {
	return c.Request(ctx, "getSenderInfo")
}

// GetWarehouseInfo fetches information about one of the account's
// warehouses.
func (c *Client) GetWarehouseInfo(ctx context.Context, warehouseID int) (Response, error) {
	return c.Request(ctx, "getWarehouseInfo",
		param.M("warehouse_id", param.Int(warehouseID)))
}

// GetRequisiteInfo fetches the shop requisites registered in the account.
func (c *Client) GetRequisiteInfo(ctx context.Context, requisiteID int) (Response, error) {
	return c.Request(ctx, "getRequisiteInfo",
		param.M("requisite_id", param.Int(requisiteID)))
}

// GetIndex resolves a postal index for an entered address.
func (c *Client) GetIndex(ctx context.Context, address string) (Response, error) {
	return c.Request(ctx, "getIndex",
		param.M("address", param.String(address)))
}

// AutocompleteOptions narrows an Autocomplete query.
type AutocompleteOptions struct {
	// Type of completion: "address" (default), "locality", "street", or
	// "house".
	Type string

	// LocalityName is the city name. Required for street and house
	// completion unless GeoID is set.
	LocalityName string

	// GeoID is the location identifier, an alternative to LocalityName.
	GeoID int

	// Street is the street name. Required for house completion.
	Street string
}

// Autocomplete completes a partial city, street, or house name.
//
// Street and house completion require GeoID or LocalityName; house
// completion additionally requires Street. Violations fail with
// *ValidationError before any I/O.
func (c *Client) Autocomplete(ctx context.Context, term string, opts AutocompleteOptions) (Response, error) {
	completeType := opts.Type
	if completeType == "" {
		completeType = "address"
	}
	if (completeType == "street" || completeType == "house") && opts.GeoID == 0 && opts.LocalityName == "" {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("type %q requires GeoID or LocalityName", completeType),
		}
	}
	if completeType == "house" && opts.Street == "" {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("type %q requires Street", completeType),
		}
	}

	return c.Request(ctx, "autocomplete",
		param.M("term", param.String(term)),
		param.M("type", param.String(completeType)),
		param.M("locality_name", param.String(opts.LocalityName)),
		param.M("geo_id", param.Int(opts.GeoID)),
		param.M("street", param.String(opts.Street)))
}

// SearchOptions describes a delivery quote search. CityFrom, CityTo,
// Weight, Width, Height, and Length are required by the API; the rest are
// optional refinements.
type SearchOptions struct {
	CityFrom string
	CityTo   string

	// Weight of the parcel, kg.
	Weight float64

	// Parcel dimensions, cm.
	Width  int
	Height int
	Length int

	// GeoIDTo/GeoIDFrom take priority over CityTo/CityFrom when both are
	// set.
	GeoIDTo   string
	GeoIDFrom string

	// DeliveryType selects courier or pickup-point delivery; empty loads
	// all variants.
	DeliveryType string

	// TotalCost of the shipment, rub; enables cash-service calculation.
	TotalCost float64

	// OrderCost of the goods, rub; enables tariff-editor rules that depend
	// on order cost.
	OrderCost float64

	// AssessedValue of the shipment, rub; enables insurance calculation.
	AssessedValue float64

	// IndexCity filters out services that do not deliver to the recipient's
	// postal index.
	IndexCity int

	// ToYDWarehouse selects shipping directly to the carrier or through the
	// shared warehouse.
	ToYDWarehouse int
}

// SearchDeliveryList quotes the available delivery options for a parcel.
func (c *Client) SearchDeliveryList(ctx context.Context, opts SearchOptions) (Response, error) {
	return c.Request(ctx, "searchDeliveryList",
		param.M("city_from", param.String(opts.CityFrom)),
		param.M("city_to", param.String(opts.CityTo)),
		param.M("weight", param.Float(opts.Weight)),
		param.M("width", param.Int(opts.Width)),
		param.M("height", param.Int(opts.Height)),
		param.M("length", param.Int(opts.Length)),
		param.M("geo_id_to", param.String(opts.GeoIDTo)),
		param.M("geo_id_from", param.String(opts.GeoIDFrom)),
		param.M("delivery_type", param.String(opts.DeliveryType)),
		param.M("total_cost", param.Float(opts.TotalCost)),
		param.M("order_cost", param.Float(opts.OrderCost)),
		param.M("assessed_value", param.Float(opts.AssessedValue)),
		param.M("index_city", param.Int(opts.IndexCity)),
		param.M("to_yd_warehouse", param.Int(opts.ToYDWarehouse)))
}

// Recipient is the person an order is delivered to.
type Recipient struct {
	FirstName  string
	MiddleName string
	LastName   string
	Phone      string
	Email      string
}

// DeliveryPoint is the destination address of an order.
type DeliveryPoint struct {
	City    string
	GeoID   int
	Street  string
	House   string
	Floor   string
	Housing string
	Index   string
}

// DeliveryService selects the carrier, direction, and tariff for an order.
type DeliveryService struct {
	Delivery      int
	Direction     int
	Tariff        int
	PickupPoint   int
	ToYDWarehouse int
}

// OrderItem is a single goods position of an order.
type OrderItem struct {
	Article  string
	Name     string
	Quantity int
	Cost     float64

	// VATValue is the value-added tax rate for the position.
	VATValue int
}

// Order describes a new order for CreateOrder.
type Order struct {
	// Num is the order number in the shop.
	Num string

	// Weight of the order, kg.
	Weight float64

	// Order dimensions, cm.
	Length int
	Width  int
	Height int

	// Requisite is the shop requisite identifier; 0 uses the first
	// configured requisite ID.
	Requisite int

	// Warehouse is the warehouse identifier; 0 uses the first configured
	// warehouse ID.
	Warehouse int

	Comment            string
	AssessedValue      float64
	AmountPrepaid      float64
	DeliveryCost       float64
	ManualDeliveryCost bool

	Recipient     Recipient
	DeliveryPoint DeliveryPoint
	Delivery      DeliveryService
	Items         []OrderItem
}

// CreateOrder registers a new order.
//
// When o.Requisite or o.Warehouse is unset, the first configured requisite
// or warehouse ID is used; if none is configured either, the call fails
// with *ValidationError before any I/O.
func (c *Client) CreateOrder(ctx context.Context, o Order) (Response, error) {
	requisite := o.Requisite
	if requisite == 0 {
		if len(c.requisiteIDs) == 0 {
			return nil, &ValidationError{Reason: "order requisite is unset and no requisite IDs are configured"}
		}
		requisite = c.requisiteIDs[0]
	}
	warehouse := o.Warehouse
	if warehouse == 0 {
		if len(c.warehouseIDs) == 0 {
			return nil, &ValidationError{Reason: "order warehouse is unset and no warehouse IDs are configured"}
		}
		warehouse = c.warehouseIDs[0]
	}

	items := make([]param.Value, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, param.Map(
			param.M("orderitem_article", param.String(item.Article)),
			param.M("orderitem_name", param.String(item.Name)),
			param.M("orderitem_quantity", param.Int(item.Quantity)),
			param.M("orderitem_cost", param.Float(item.Cost)),
			param.M("orderitem_vat_value", param.Int(item.VATValue)),
		))
	}

	return c.Request(ctx, "createOrder",
		param.M("order_num", param.String(o.Num)),
		param.M("order_weight", param.Float(o.Weight)),
		param.M("order_length", param.Int(o.Length)),
		param.M("order_width", param.Int(o.Width)),
		param.M("order_height", param.Int(o.Height)),
		param.M("order_requisite", param.Int(requisite)),
		param.M("order_warehouse", param.Int(warehouse)),
		param.M("order_comment", param.String(o.Comment)),
		param.M("order_assessed_value", param.Float(o.AssessedValue)),
		param.M("order_amount_prepaid", param.Float(o.AmountPrepaid)),
		param.M("order_delivery_cost", param.Float(o.DeliveryCost)),
		param.M("is_manual_delivery_cost", param.Bool(o.ManualDeliveryCost)),
		param.M("recipient", param.Map(
			param.M("first_name", param.String(o.Recipient.FirstName)),
			param.M("middle_name", param.String(o.Recipient.MiddleName)),
			param.M("last_name", param.String(o.Recipient.LastName)),
			param.M("phone", param.String(o.Recipient.Phone)),
			param.M("email", param.String(o.Recipient.Email)),
		)),
		param.M("deliverypoint", param.Map(
			param.M("city", param.String(o.DeliveryPoint.City)),
			param.M("geo_id", param.Int(o.DeliveryPoint.GeoID)),
			param.M("street", param.String(o.DeliveryPoint.Street)),
			param.M("house", param.String(o.DeliveryPoint.House)),
			param.M("floor", param.String(o.DeliveryPoint.Floor)),
			param.M("housing", param.String(o.DeliveryPoint.Housing)),
			param.M("index", param.String(o.DeliveryPoint.Index)),
		)),
		param.M("delivery", param.Map(
			param.M("delivery", param.Int(o.Delivery.Delivery)),
			param.M("direction", param.Int(o.Delivery.Direction)),
			param.M("tariff", param.Int(o.Delivery.Tariff)),
			param.M("pickuppoint", param.Int(o.Delivery.PickupPoint)),
			param.M("to_yd_warehouse", param.Int(o.Delivery.ToYDWarehouse)),
		)),
		param.M("order_items", param.List(items...)))
}
