// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order aggregate spans three tables: the order row
// itself, its vendor quotes, and a shared append-only notes table holding the
// order, procurement and vendor note streams.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/order"
)

// Note stream discriminators for the notes table.
const (
	noteStreamOrder       = 0
	noteStreamProcurement = 1
	noteStreamVendor      = 2
)

// OrderDTO represents the database structure for persisting order aggregates.
// Shipment and checklist are embedded as prefixed column groups with presence
// flags, since both appear on the order only after certain transitions.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerName string     `gorm:"type:varchar(255);not null"`
	AmountCents  int64      `gorm:"not null"`
	Status       int        `gorm:"index"`
	AgentID      *uuid.UUID `gorm:"type:uuid;index"`

	ShipmentRecorded bool
	Shipment         ShipmentDTO `gorm:"embedded;embeddedPrefix:shipment_"`

	PicturesReceivedFromYard bool
	PicturesSentToCustomer   bool

	ChecklistPresent bool
	Checklist        ChecklistDTO `gorm:"embedded;embeddedPrefix:checklist_"`

	Version int `gorm:"not null"`

	Vendors []VendorQuoteDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Notes   []NoteDTO        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ShipmentDTO holds the embedded shipment columns within the order table.
type ShipmentDTO struct {
	Weight         float64
	Height         float64
	Width          float64
	CarrierName    string `gorm:"type:varchar(255)"`
	TrackingNumber string `gorm:"type:varchar(255)"`
	BOLNumber      string `gorm:"column:bol_number;type:varchar(255)"`
	TrackingLink   string
}

// ChecklistDTO holds the embedded procurement checklist columns.
type ChecklistDTO struct {
	VendorInformedDate       *time.Time
	ReplacementPartReadyDate *time.Time

	SentPicturesToVendor          bool
	SentDiagnosticReportToVendor  bool
	YardAgreedReturnShipping      bool
	YardAgreedReplacement         bool
	YardAgreedReplacementShipping bool

	AdditionalCostPartCents     *int64
	AdditionalCostShippingCents *int64
}

// VendorQuoteDTO represents the database structure for vendor quote entities.
type VendorQuoteDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index"`

	BusinessName string `gorm:"type:varchar(255);not null"`
	AgentName    string `gorm:"type:varchar(255)"`
	PhoneNumber  string `gorm:"type:varchar(64)"`
	Email        string `gorm:"type:varchar(255)"`

	CostPriceCents    int64
	ShippingCostCents int64
	CorePriceCents    int64
	TotalCostCents    int64

	Rating   int
	Warranty string `gorm:"type:varchar(255)"`
	Mileage  int

	POStatus         int `gorm:"column:po_status;index"`
	IsConfirmed      bool
	PaymentConfirmed bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "vendor_quotes".
func (VendorQuoteDTO) TableName() string {
	return "vendor_quotes"
}

// NoteDTO represents one row of the shared notes table. VendorID is set only
// for vendor stream notes.
type NoteDTO struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	VendorID  *uuid.UUID `gorm:"type:uuid;index"`
	Stream    int        `gorm:"not null"`
	Text      string     `gorm:"not null"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "notes".
func (NoteDTO) TableName() string {
	return "notes"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var agentID *uuid.UUID
	if id := aggregate.AgentID(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	dto := OrderDTO{
		ID:                       orderID,
		CustomerName:             aggregate.CustomerName(),
		AmountCents:              aggregate.Amount().Cents(),
		Status:                   int(aggregate.Status()),
		AgentID:                  agentID,
		PicturesReceivedFromYard: aggregate.PicturesReceivedFromYard(),
		PicturesSentToCustomer:   aggregate.PicturesSentToCustomer(),
		Version:                  aggregate.Version(),
	}

	if shipment := aggregate.Shipment(); shipment != nil {
		dto.ShipmentRecorded = true
		dto.Shipment = ShipmentDTO{
			Weight:         shipment.Weight(),
			Height:         shipment.Height(),
			Width:          shipment.Width(),
			CarrierName:    shipment.CarrierName(),
			TrackingNumber: shipment.TrackingNumber(),
			BOLNumber:      shipment.BOLNumber(),
			TrackingLink:   shipment.TrackingLink(),
		}
	}

	if checklist := aggregate.Checklist(); checklist != nil {
		dto.ChecklistPresent = true
		dto.Checklist = ChecklistDTO{
			VendorInformedDate:            checklist.VendorInformedDate(),
			ReplacementPartReadyDate:      checklist.ReplacementPartReadyDate(),
			SentPicturesToVendor:          checklist.SentPicturesToVendor(),
			SentDiagnosticReportToVendor:  checklist.SentDiagnosticReportToVendor(),
			YardAgreedReturnShipping:      checklist.YardAgreedReturnShipping(),
			YardAgreedReplacement:         checklist.YardAgreedReplacement(),
			YardAgreedReplacementShipping: checklist.YardAgreedReplacementShipping(),
			AdditionalCostPartCents:       moneyPtrToCents(checklist.AdditionalCostReplacementPart()),
			AdditionalCostShippingCents:   moneyPtrToCents(checklist.AdditionalCostReplacementShipping()),
		}
	}

	for _, vendor := range aggregate.Vendors() {
		vendorID := vendor.ID().Bytes()
		dto.Vendors = append(dto.Vendors, VendorQuoteDTO{
			ID:                vendorID,
			OrderID:           orderID,
			BusinessName:      vendor.BusinessName(),
			AgentName:         vendor.AgentName(),
			PhoneNumber:       vendor.PhoneNumber(),
			Email:             vendor.Email(),
			CostPriceCents:    vendor.CostPrice().Cents(),
			ShippingCostCents: vendor.ShippingCost().Cents(),
			CorePriceCents:    vendor.CorePrice().Cents(),
			TotalCostCents:    vendor.TotalCost().Cents(),
			Rating:            vendor.Rating(),
			Warranty:          vendor.Warranty(),
			Mileage:           vendor.Mileage(),
			POStatus:          int(vendor.POStatus()),
			IsConfirmed:       vendor.IsConfirmed(),
			PaymentConfirmed:  vendor.PaymentConfirmed(),
		})

		for _, note := range vendor.Notes() {
			id := vendorID
			dto.Notes = append(dto.Notes, NoteDTO{
				OrderID:   orderID,
				VendorID:  &id,
				Stream:    noteStreamVendor,
				Text:      note.Text(),
				CreatedAt: note.CreatedAt(),
			})
		}
	}

	for _, note := range aggregate.Notes() {
		dto.Notes = append(dto.Notes, NoteDTO{
			OrderID:   orderID,
			Stream:    noteStreamOrder,
			Text:      note.Text(),
			CreatedAt: note.CreatedAt(),
		})
	}
	for _, note := range aggregate.ProcurementNotes() {
		dto.Notes = append(dto.Notes, NoteDTO{
			OrderID:   orderID,
			Stream:    noteStreamProcurement,
			Text:      note.Text(),
			CreatedAt: note.CreatedAt(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoneyFromCents(dto.AmountCents)
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	vendorNotes, orderNotes, procurementNotes, err := splitNotes(dto.Notes)
	if err != nil {
		return nil, err
	}

	vendors := make([]*order.VendorQuote, 0, len(dto.Vendors))
	for _, vendorDto := range dto.Vendors {
		vendor, vendorErr := vendorToDomain(vendorDto, vendorNotes[vendorDto.ID])
		if vendorErr != nil {
			return nil, vendorErr
		}
		vendors = append(vendors, vendor)
	}

	var shipment *order.Shipment
	if dto.ShipmentRecorded {
		s, shipErr := order.NewShipment(
			dto.Shipment.Weight, dto.Shipment.Height, dto.Shipment.Width,
			dto.Shipment.CarrierName, dto.Shipment.TrackingNumber,
			dto.Shipment.BOLNumber, dto.Shipment.TrackingLink,
		)
		if shipErr != nil {
			return nil, shipErr
		}
		shipment = &s
	}

	var checklist *order.ProcurementChecklist
	if dto.ChecklistPresent {
		checklist = order.RestoreProcurementChecklist(
			dto.Checklist.VendorInformedDate,
			dto.Checklist.ReplacementPartReadyDate,
			dto.Checklist.SentPicturesToVendor,
			dto.Checklist.SentDiagnosticReportToVendor,
			dto.Checklist.YardAgreedReturnShipping,
			dto.Checklist.YardAgreedReplacement,
			dto.Checklist.YardAgreedReplacementShipping,
			centsPtrToMoney(dto.Checklist.AdditionalCostPartCents),
			centsPtrToMoney(dto.Checklist.AdditionalCostShippingCents),
		)
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		amount,
		order.Status(dto.Status),
		vendors,
		shipment,
		dto.PicturesReceivedFromYard,
		dto.PicturesSentToCustomer,
		orderNotes,
		procurementNotes,
		checklist,
		agentID,
		dto.Version,
	)
}

// vendorToDomain converts a vendor quote DTO to its domain entity.
func vendorToDomain(dto VendorQuoteDTO, notes []order.Note) (*order.VendorQuote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	costPrice, err := kernel.NewMoneyFromCents(dto.CostPriceCents)
	if err != nil {
		return nil, err
	}
	shippingCost, err := kernel.NewMoneyFromCents(dto.ShippingCostCents)
	if err != nil {
		return nil, err
	}
	corePrice, err := kernel.NewMoneyFromCents(dto.CorePriceCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreVendorQuote(
		id,
		dto.BusinessName, dto.AgentName, dto.PhoneNumber, dto.Email,
		costPrice, shippingCost, corePrice,
		dto.Rating,
		dto.Warranty,
		dto.Mileage,
		order.POStatus(dto.POStatus),
		dto.IsConfirmed, dto.PaymentConfirmed,
		notes,
	)
}

// splitNotes separates the shared notes table rows into the vendor, order and
// procurement streams. Rows arrive ordered by creation time.
func splitNotes(dtos []NoteDTO) (map[uuid.UUID][]order.Note, []order.Note, []order.Note, error) {
	vendorNotes := make(map[uuid.UUID][]order.Note)
	var orderNotes, procurementNotes []order.Note

	for _, dto := range dtos {
		note, err := order.RestoreNote(dto.Text, dto.CreatedAt)
		if err != nil {
			return nil, nil, nil, err
		}

		switch dto.Stream {
		case noteStreamVendor:
			if dto.VendorID != nil {
				vendorNotes[*dto.VendorID] = append(vendorNotes[*dto.VendorID], note)
			}
		case noteStreamProcurement:
			procurementNotes = append(procurementNotes, note)
		default:
			orderNotes = append(orderNotes, note)
		}
	}

	return vendorNotes, orderNotes, procurementNotes, nil
}

func moneyPtrToCents(m *kernel.Money) *int64 {
	if m == nil {
		return nil
	}
	cents := m.Cents()
	return &cents
}

func centsPtrToMoney(cents *int64) *kernel.Money {
	if cents == nil {
		return nil
	}
	m := kernel.MustMoneyFromCents(*cents)
	return &m
}
