package handler

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"wallet-service/internal/adapter/http/dto"
	"wallet-service/internal/core/domain"
	"wallet-service/internal/core/ports"
	"wallet-service/pkg/apperror"
	"wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles the per-user wallet endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, apperror.Validation(fmt.Sprintf("invalid %s: %s", name, c.Param(name))))
		return uuid.Nil, false
	}
	return id, true
}

// bindPayload decodes a JSON body, distinguishing a missing payload from a
// malformed one.
func bindPayload(c *gin.Context, payloadName string, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		if errors.Is(err, io.EOF) {
			response.Error(c, apperror.ErrNullPayload(payloadName))
			return false
		}
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}

// Create handles POST /api/v1/users/:userId/wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}

	var req dto.CreateWalletRequest
	if !bindPayload(c, "wallet creation", &req) {
		return
	}

	wallet, err := h.walletSvc.Create(c.Request.Context(), userID, &ports.CreateWalletInput{
		Surname:    req.Surname,
		IsActive:   req.IsActive,
		MinBalance: req.MinBalance,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	location := fmt.Sprintf("/api/v1/users/%s/wallets/%s", userID, wallet.ID)
	response.Created(c, location, toWalletResponse(wallet))
}

// Search handles GET /api/v1/users/:userId/wallets.
func (h *WalletHandler) Search(c *gin.Context) {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}

	input := ports.SearchWalletsInput{}
	if surname := c.Query("surname"); surname != "" {
		input.Surname = &surname
	}
	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			response.Error(c, apperror.Validation("page must be an integer"))
			return
		}
		input.Page.Page = page
	}
	if sizeStr := c.Query("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			response.Error(c, apperror.Validation("size must be an integer"))
			return
		}
		input.Page.Size = size
	}
	input.Page.Sort = ports.SortField(c.Query("sort"))
	input.Page.Direction = ports.SortDirection(c.Query("direction"))

	page, err := h.walletSvc.Search(c.Request.Context(), userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletPageResponse(page))
}

// Retrieve handles GET /api/v1/users/:userId/wallets/:walletId.
func (h *WalletHandler) Retrieve(c *gin.Context) {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}
	walletID, ok := pathUUID(c, "walletId")
	if !ok {
		return
	}

	wallet, err := h.walletSvc.Retrieve(c.Request.Context(), userID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(wallet))
}

// RetrieveDefault handles GET /api/v1/users/:userId/wallets/default.
func (h *WalletHandler) RetrieveDefault(c *gin.Context) {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}

	wallet, err := h.walletSvc.RetrieveDefault(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(wallet))
}

// Update handles PUT /api/v1/users/:userId/wallets/:walletId.
func (h *WalletHandler) Update(c *gin.Context) {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}
	walletID, ok := pathUUID(c, "walletId")
	if !ok {
		return
	}

	var req dto.UpdateWalletRequest
	if !bindPayload(c, "wallet update", &req) {
		return
	}

	wallet, err := h.walletSvc.Update(c.Request.Context(), userID, walletID, &ports.UpdateWalletInput{
		Surname:            req.Surname,
		IsActive:           *req.IsActive,
		MinBalance:         *req.MinBalance,
		AcceptBankTransfer: *req.AcceptBankTransfer,
		AcceptPayments:     *req.AcceptPayments,
		AcceptWithdrawing:  *req.AcceptWithdrawing,
		AcceptDeposit:      *req.AcceptDeposit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(wallet))
}

// PartialUpdate handles PATCH /api/v1/users/:userId/wallets/:walletId.
func (h *WalletHandler) PartialUpdate(c *gin.Context) {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}
	walletID, ok := pathUUID(c, "walletId")
	if !ok {
		return
	}

	var req dto.PatchWalletRequest
	if !bindPayload(c, "wallet update", &req) {
		return
	}

	wallet, err := h.walletSvc.PartialUpdate(c.Request.Context(), userID, walletID, &ports.PatchWalletInput{
		Surname:            req.Surname,
		IsActive:           req.IsActive,
		MinBalance:         req.MinBalance,
		AcceptBankTransfer: req.AcceptBankTransfer,
		AcceptPayments:     req.AcceptPayments,
		AcceptWithdrawing:  req.AcceptWithdrawing,
		AcceptDeposit:      req.AcceptDeposit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(wallet))
}

// Toggle handles PATCH /api/v1/users/:userId/wallets/:walletId/toggle/:field.
func (h *WalletHandler) Toggle(c *gin.Context) {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}
	walletID, ok := pathUUID(c, "walletId")
	if !ok {
		return
	}

	wallet, err := h.walletSvc.Toggle(c.Request.Context(), userID, walletID, domain.ToggleField(c.Param("field")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(wallet))
}

// SetDefault handles PATCH /api/v1/users/:userId/wallets/:walletId/default.
func (h *WalletHandler) SetDefault(c *gin.Context) {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}
	walletID, ok := pathUUID(c, "walletId")
	if !ok {
		return
	}

	wallet, err := h.walletSvc.SetDefault(c.Request.Context(), userID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(wallet))
}

// Delete handles DELETE /api/v1/users/:userId/wallets/:walletId.
func (h *WalletHandler) Delete(c *gin.Context) {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}
	walletID, ok := pathUUID(c, "walletId")
	if !ok {
		return
	}

	wallet, err := h.walletSvc.Delete(c.Request.Context(), userID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(wallet))
}

func toWalletResponse(w *domain.Wallet) dto.WalletResponse {
	resp := dto.WalletResponse{
		ID:                 w.ID.String(),
		UserID:             w.UserID.String(),
		Surname:            w.Surname,
		IsActive:           w.IsActive,
		IsDefault:          w.IsDefault,
		MinBalance:         w.MinBalance,
		AcceptBankTransfer: w.AcceptBankTransfer,
		AcceptPayments:     w.AcceptPayments,
		AcceptWithdrawing:  w.AcceptWithdrawing,
		AcceptDeposit:      w.AcceptDeposit,
		CreatedAt:          w.CreatedAt.Format(time.RFC3339),
	}
	if w.UpdatedAt != nil {
		updated := w.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updated
	}
	return resp
}

func toWalletPageResponse(page *ports.WalletPage) dto.WalletPageResponse {
	items := make([]dto.WalletResponse, 0, len(page.Content))
	for i := range page.Content {
		items = append(items, toWalletResponse(&page.Content[i]))
	}
	return dto.WalletPageResponse{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.Size,
		TotalPages: page.PageCount,
		SortedBy:   page.SortedBy,
	}
}
