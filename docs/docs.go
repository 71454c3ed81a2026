// Package docs holds the swagger document served at /swagger. The canonical
// API description lives in api/openapi.yml; this template mirrors it in the
// format the swagger UI handler consumes.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/orders": {
            "get": {
                "summary": "List all open (non-terminal) orders",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "summary": "Open a new order",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/orders/{orderId}": {
            "get": {
                "summary": "Retrieve one order with vendors, notes, shipment and checklist",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/orders/{orderId}/vendors": {
            "post": {
                "summary": "Attach a vendor quote",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/orders/{orderId}/vendors/active": {
            "get": {
                "summary": "Retrieve the active vendor with profitability figures",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/orders/{orderId}/vendors/canceled": {
            "get": {
                "summary": "List canceled vendor quotes with refund ledger state",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/orders/{orderId}/vendors/{vendorId}": {
            "patch": {
                "summary": "Edit a vendor quote's contact, cost or detail sections",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/orders/{orderId}/vendors/{vendorId}/po": {
            "post": {
                "summary": "Send the purchase order to a vendor",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/orders/{orderId}/vendors/{vendorId}/po/preview": {
            "get": {
                "summary": "Render the purchase order document without changing state",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/orders/{orderId}/vendors/{vendorId}/confirmation": {
            "post": {
                "summary": "Confirm the purchase order, making this vendor the active one",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/orders/{orderId}/vendors/{vendorId}/cancellation": {
            "post": {
                "summary": "Cancel a vendor quote, recording a refund obligation when money changed hands",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/orders/{orderId}/payment/request": {
            "post": {
                "summary": "Initiate payment to the active vendor",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/orders/{orderId}/payment/confirmation": {
            "post": {
                "summary": "Mark payment to the active vendor as settled",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/orders/{orderId}/shipment": {
            "post": {
                "summary": "Record shipment details",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/orders/{orderId}/shipping-status": {
            "patch": {
                "summary": "Advance the order through ShipOut, Intransit and Delivered",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/orders/{orderId}/litigation": {
            "post": {
                "summary": "Escalate a disputed order to the terminal litigation state",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/orders/{orderId}/replacement": {
            "post": {
                "summary": "Start the replacement negotiation branch on a delivered order",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/orders/{orderId}/replacement/closure": {
            "post": {
                "summary": "Resolve the replacement branch as completed or cancelled",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/orders/{orderId}/replacement/checklist": {
            "patch": {
                "summary": "Apply a partial update to the procurement checklist",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/orders/{orderId}/pictures": {
            "post": {
                "summary": "Record a picture exchange stage during replacement",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/orders/{orderId}/notes": {
            "post": {
                "summary": "Append a note to the order or to one of its vendor quotes",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/refunds/pending": {
            "get": {
                "summary": "Report all outstanding vendor refunds and the total amount owed",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/refunds/{entryId}/confirmation": {
            "post": {
                "summary": "Mark a ledger entry's refund as received",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/rotation/agents": {
            "post": {
                "summary": "Add an agent to or remove one from the lead rotation",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/rotation/assignments": {
            "post": {
                "summary": "Distribute every unassigned order across the rotation",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Parts Flow",
	Description:      "Customer part order fulfillment service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
