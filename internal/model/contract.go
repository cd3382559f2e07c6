package model

import "time"

type Category string

const (
	CategoryGoodsPurchase    Category = "GOODS_PURCHASE"
	CategoryGoodsManufacture Category = "GOODS_MANUFACTURE"
	CategoryService          Category = "SERVICE"
	CategoryConstruction     Category = "CONSTRUCTION"
)

type Method string

const (
	MethodOpenBid            Method = "OPEN_BID"
	MethodRestrictedBid      Method = "RESTRICTED_BID"
	MethodNominatedBid       Method = "NOMINATED_BID"
	MethodOpenNegotiation    Method = "OPEN_NEGOTIATION"
	MethodPrivateNegotiation Method = "PRIVATE_NEGOTIATION"
)

type Status string

const (
	StatusBeforeStart Status = "BEFORE_START"
	StatusInProgress  Status = "IN_PROGRESS"
	StatusWaiting     Status = "WAITING"
	StatusDelayed     Status = "DELAYED"
	StatusCompleted   Status = "COMPLETED"
	StatusDeleted     Status = "DELETED"
)

// LiveStatuses lists every status shown in summaries, in display order.
// DELETED is a soft-delete marker and never appears in listings.
var LiveStatuses = []Status{
	StatusBeforeStart,
	StatusInProgress,
	StatusWaiting,
	StatusDelayed,
	StatusCompleted,
}

var categoryLabels = map[Category]string{
	CategoryGoodsPurchase:    "물품(구매)",
	CategoryGoodsManufacture: "물품(제조)",
	CategoryService:          "용역",
	CategoryConstruction:     "공사",
}

var methodLabels = map[Method]string{
	MethodOpenBid:            "일반경쟁",
	MethodRestrictedBid:      "제한경쟁",
	MethodNominatedBid:       "지명경쟁",
	MethodOpenNegotiation:    "공개수의",
	MethodPrivateNegotiation: "비공개수의",
}

var statusLabels = map[Status]string{
	StatusBeforeStart: "시작 전",
	StatusInProgress:  "진행 중",
	StatusWaiting:     "대기",
	StatusDelayed:     "지연",
	StatusCompleted:   "완료",
	StatusDeleted:     "삭제",
}

func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

func (m Method) Label() string {
	if label, ok := methodLabels[m]; ok {
		return label
	}
	return string(m)
}

func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Contract is the central entity: one procurement case moving through the
// fixed stage workflow of its contracting method. The ID is a human-readable
// code of the form C{YY}-{NNN}, assigned from a per-year counter.
type Contract struct {
	ID       string   `gorm:"primaryKey;size:16"`
	Title    string   `gorm:"not null"`
	Category Category `gorm:"size:32;not null"`
	Method   Method   `gorm:"size:32;not null;index"`

	// Amount is the legacy single figure; Budget/ContractAmount/
	// ExecutionAmount are the richer triple. All in won.
	Amount          int64 `gorm:"not null;default:0"`
	Budget          int64 `gorm:"not null;default:0"`
	ContractAmount  int64 `gorm:"not null;default:0"`
	ExecutionAmount int64 `gorm:"not null;default:0"`

	Stage  string `gorm:"size:32;not null"`
	Status Status `gorm:"size:16;not null;index"`

	Requester        *string
	RequesterContact *string
	Contractor       *string

	Deadline          *time.Time
	RequestDate       *time.Time
	AnnouncementStart *time.Time
	AnnouncementEnd   *time.Time
	OpeningDate       *time.Time
	ContractStart     *time.Time
	ContractEnd       *time.Time
	PaymentDate       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Notes []Note `gorm:"foreignKey:ContractID"`
}
