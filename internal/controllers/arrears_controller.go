package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"homely/internal/config"
	"homely/internal/middleware"
	"homely/internal/reports"
	"homely/internal/workflow"
)

// Arrears returns the landowner's arrears page data. The tenant-name
// search narrows overdue bills and pending payments.
func Arrears(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	search := c.Query("search")

	view, err := reports.BuildArrears(config.DB, actor.UserID)
	if err != nil {
		fail(c, err)
		return
	}

	if search != "" {
		overdue := view.OverdueBills[:0]
		for _, b := range view.OverdueBills {
			if containsFold(b.TenantName, search) {
				overdue = append(overdue, b)
			}
		}
		view.OverdueBills = overdue
		pending := view.PendingPayments[:0]
		for _, p := range view.PendingPayments {
			if containsFold(p.TenantName, search) {
				pending = append(pending, p)
			}
		}
		view.PendingPayments = pending
		view.OverdueCount = len(view.OverdueBills)
		view.PendingCount = len(view.PendingPayments)
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

// CreateBill issues a bill to a tenant.
func CreateBill(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	var body struct {
		TenantID    string `json:"tenantId" binding:"required"`
		Amount      string `json:"amount" binding:"required"`
		Description string `json:"description"`
		DueDate     string `json:"dueDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	dueDate, err := time.Parse("2006-01-02", body.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid due date"})
		return
	}

	bill, err := workflow.CreateBill(config.DB, actor.UserID, body.TenantID, body.Amount, body.Description, dueDate)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Bill for R" + bill.Amount + " sent to tenant.", "bill": bill})
}

// ApprovePayment approves a payment and settles its bill.
func ApprovePayment(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	var body struct {
		BillID string `json:"billId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err := workflow.ApprovePayment(config.DB, actor.UserID, c.Param("id"), body.BillID); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Payment approved and marked as PAID.")
}

// RejectPayment rejects a payment and reopens its bill.
func RejectPayment(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	var body struct {
		BillID string `json:"billId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err := workflow.RejectPayment(config.DB, actor.UserID, c.Param("id"), body.BillID); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Payment rejected and marked as UNPAID.")
}
