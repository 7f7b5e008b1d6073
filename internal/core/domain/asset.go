package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// AssetType is the category an asset is grouped under on the dashboard.
type AssetType string

const (
	AssetCash        AssetType = "cash"
	AssetBankAccount AssetType = "bank_account"
	AssetInvestment  AssetType = "investment"
	AssetCrypto      AssetType = "crypto"
	AssetRealEstate  AssetType = "real_estate"
	AssetVehicle     AssetType = "vehicle"
	AssetOther       AssetType = "other"
)

// AssetTypes lists every accepted asset type.
var AssetTypes = []AssetType{AssetCash, AssetBankAccount, AssetInvestment, AssetCrypto, AssetRealEstate, AssetVehicle, AssetOther}

// IsValid reports whether t is one of AssetTypes.
func (t AssetType) IsValid() bool {
	for _, v := range AssetTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Asset is something the owner holds. CurrentValue is user-entered and never
// derived from transactions.
type Asset struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	Name         string          `json:"name"`
	Type         AssetType       `json:"type"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	IsDeleted    bool            `json:"isDeleted"`
	AuditFields
}

// CreateAssetInput is the caller-supplied part of a new asset.
type CreateAssetInput struct {
	Name         string          `json:"name" validate:"required"`
	Type         AssetType       `json:"type" validate:"required,oneof=cash bank_account investment crypto real_estate vehicle other"`
	CurrentValue decimal.Decimal `json:"currentValue"`
}

// Validate checks the rules the struct tags cannot express.
func (in CreateAssetInput) Validate() error {
	if in.CurrentValue.IsNegative() {
		return errors.New("currentValue must not be negative")
	}
	return nil
}

// AssetPatch lists the fields an asset update may change. Nil means "leave as is".
type AssetPatch struct {
	Name         *string          `json:"name,omitempty" validate:"omitempty,min=1"`
	Type         *AssetType       `json:"type,omitempty" validate:"omitempty,oneof=cash bank_account investment crypto real_estate vehicle other"`
	CurrentValue *decimal.Decimal `json:"currentValue,omitempty"`
}

// IsEmpty reports whether no field is supplied.
func (p AssetPatch) IsEmpty() bool {
	return p.Name == nil && p.Type == nil && p.CurrentValue == nil
}

// Validate checks the rules the struct tags cannot express.
func (p AssetPatch) Validate() error {
	if p.CurrentValue != nil && p.CurrentValue.IsNegative() {
		return errors.New("currentValue must not be negative")
	}
	return nil
}

// Apply returns a copy of a with the supplied fields overwritten.
func (p AssetPatch) Apply(a Asset) Asset {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.CurrentValue != nil {
		a.CurrentValue = *p.CurrentValue
	}
	return a
}
