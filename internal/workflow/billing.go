package workflow

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"homely/internal/models"
)

// CreateBill issues an UNPAID bill to a tenant.
func CreateBill(db *gorm.DB, ownerID, tenantID, amount, description string, dueDate time.Time) (*models.Bill, error) {
	if tenantID == "" {
		return nil, validationf("tenantId is required")
	}
	if _, err := decimal.NewFromString(amount); err != nil {
		return nil, validationf("amount %q is not a valid decimal", amount)
	}
	if dueDate.IsZero() {
		return nil, validationf("dueDate is required")
	}

	var tenant models.User
	if err := db.First(&tenant, "id = ?", tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tenant %s: %w", tenantID, ErrNotFound)
		}
		return nil, err
	}

	bill := models.Bill{
		TenantID:    tenantID,
		LandownerID: ownerID,
		Amount:      amount,
		Description: description,
		DueDate:     dueDate,
		Status:      models.BillUnpaid,
	}
	if err := db.Create(&bill).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"bill":   bill.ID,
		"tenant": tenantID,
		"amount": amount,
	}).Info("bill created")
	return &bill, nil
}

// ApprovePayment marks the payment Approved and its bill PAID in one
// transaction. Approving an already approved payment is a no-op.
func ApprovePayment(db *gorm.DB, ownerID, paymentID, billID string) error {
	return reconcilePayment(db, ownerID, paymentID, billID, models.PaymentApproved, models.BillPaid)
}

// RejectPayment marks the payment Rejected and its bill back to UNPAID in
// one transaction. Rejecting an already rejected payment is a no-op.
func RejectPayment(db *gorm.DB, ownerID, paymentID, billID string) error {
	return reconcilePayment(db, ownerID, paymentID, billID, models.PaymentRejected, models.BillUnpaid)
}

func reconcilePayment(db *gorm.DB, ownerID, paymentID, billID, paymentStatus, billStatus string) error {
	if paymentID == "" || billID == "" {
		return validationf("paymentId and billId are required")
	}

	var payment models.Payment
	if err := db.First(&payment, "id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("payment %s: %w", paymentID, ErrNotFound)
		}
		return err
	}
	if payment.LandownerID != ownerID {
		return fmt.Errorf("payment %s does not belong to the caller: %w", paymentID, ErrUnauthorized)
	}
	if payment.BillID != billID {
		return validationf("payment %s is not linked to bill %s", paymentID, billID)
	}

	var bill models.Bill
	if err := db.First(&bill, "id = ?", billID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("bill %s: %w", billID, ErrNotFound)
		}
		return err
	}

	if payment.Status == paymentStatus && bill.Status == billStatus {
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Payment{}).Where("id = ?", paymentID).
			Update("status", paymentStatus).Error; err != nil {
			return err
		}
		return tx.Model(&models.Bill{}).Where("id = ?", billID).
			Update("status", billStatus).Error
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"payment": paymentID,
		"bill":    billID,
		"status":  paymentStatus,
	}).Info("payment reconciled")
	return nil
}
