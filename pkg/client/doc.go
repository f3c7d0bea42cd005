// Package client provides an HTTP client for the delivery API with
// automatic per-method request signing.
//
// Every call is authenticated with a method key: the request parameters are
// linearized into a deterministic canonical string, combined with the key,
// and digested into a secret_key field sent alongside the data. The server
// recomputes the same digest from the received parameters, so the whole
// pipeline — canonical ordering, zero-value filtering, bracket encoding —
// must match the wire protocol exactly.
//
// # Basic Usage
//
//	cfg := config.Config{
//	    ClientID: 123,
//	    SenderID: 456,
//	    MethodKeys: map[string]string{
//	        "searchDeliveryList": "...",
//	    },
//	}
//	c, err := client.New(cfg, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := c.SearchDeliveryList(ctx, client.SearchOptions{
//	    CityFrom: "Москва",
//	    CityTo:   "Санкт-Петербург",
//	    Weight:   1.5,
//	    Width:    10, Height: 20, Length: 30,
//	})
//
// # Generic Requests
//
// Endpoint wrappers cover the common methods; anything else goes through
// Request directly:
//
//	resp, err := c.Request(ctx, "getPaymentMethods",
//	    param.M("order_id", param.Int(42)))
//
// # Error Handling
//
// Failures are typed and matched with errors.As:
//
//	resp, err := c.CreateOrder(ctx, order)
//	var protoErr *client.ProtocolError
//	if errors.As(err, &protoErr) {
//	    log.Printf("server rejected the order: %s", protoErr.Code)
//	}
//
//   - *ConfigurationError: the method has no registered key (no I/O done)
//   - *ValidationError: arguments violate an endpoint precondition (no I/O)
//   - *TransportError: the HTTP exchange itself failed
//   - *MalformedResponseError: the response body is not JSON
//   - *ProtocolError: the server answered with status "error"
//
// # Zero Values
//
// Parameters that are zero-valued (empty strings, numeric zero, false,
// empty containers) are dropped from both the signature and the body. This
// lets wrappers pass every optional field unconditionally — unset ones
// simply vanish — but it also means a genuinely zero price or quantity
// never reaches the server. The rule is part of the signature algorithm and
// cannot be changed without breaking compatibility.
//
// # Thread Safety
//
// A Client holds only immutable configuration after New and is safe for
// concurrent use by multiple goroutines. The transport call is the only
// blocking operation; cancel it through the context.
package client
