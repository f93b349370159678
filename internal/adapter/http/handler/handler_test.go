package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet-service/internal/adapter/http/dto"
	"wallet-service/internal/core/domain"
	"wallet-service/internal/core/ports"
	"wallet-service/internal/core/ports/mocks"
	"wallet-service/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockWalletService) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockWalletService(ctrl)
	r := SetupRouter(RouterDeps{WalletSvc: svc})
	return r, svc
}

func sampleWallet(userID uuid.UUID, surname string) *domain.Wallet {
	w := domain.NewWallet(userID, surname, nil, nil)
	return &w
}

func serve(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateWallet_Success(t *testing.T) {
	r, svc := newTestRouter(t)
	userID := uuid.New()
	wallet := sampleWallet(userID, "vacations")

	svc.EXPECT().
		Create(gomock.Any(), userID, &ports.CreateWalletInput{Surname: "Vacations"}).
		Return(wallet, nil)

	body, _ := json.Marshal(dto.CreateWalletRequest{Surname: "Vacations"})
	w := serve(r, http.MethodPost, "/api/v1/users/"+userID.String()+"/wallets", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/v1/users/"+userID.String()+"/wallets/"+wallet.ID.String(), w.Header().Get("Location"))

	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "vacations", data["surname"])
	assert.Equal(t, userID.String(), data["user_id"])
}

func TestCreateWallet_EmptyBodyIsNullPayload(t *testing.T) {
	r, _ := newTestRouter(t)
	userID := uuid.New()

	w := serve(r, http.MethodPost, "/api/v1/users/"+userID.String()+"/wallets", []byte{})

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "WLT_005", resp["error_code"])
}

func TestCreateWallet_InvalidUserID(t *testing.T) {
	r, _ := newTestRouter(t)

	body, _ := json.Marshal(dto.CreateWalletRequest{Surname: "vacations"})
	w := serve(r, http.MethodPost, "/api/v1/users/not-a-uuid/wallets", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "WLT_400", resp["error_code"])
}

func TestCreateWallet_ServiceErrorIsMapped(t *testing.T) {
	r, svc := newTestRouter(t)
	userID := uuid.New()

	svc.EXPECT().
		Create(gomock.Any(), userID, gomock.Any()).
		Return(nil, apperror.ErrDuplicatedSurname("vacations"))

	body, _ := json.Marshal(dto.CreateWalletRequest{Surname: "vacations"})
	w := serve(r, http.MethodPost, "/api/v1/users/"+userID.String()+"/wallets", body)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "WLT_003", resp["error_code"])
}

func TestSearchWallets_PassesQueryParameters(t *testing.T) {
	r, svc := newTestRouter(t)
	userID := uuid.New()
	wallet := sampleWallet(userID, "health")

	svc.EXPECT().
		Search(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, input ports.SearchWalletsInput) (*ports.WalletPage, error) {
			require.NotNil(t, input.Surname)
			assert.Equal(t, "health", *input.Surname)
			assert.Equal(t, 2, input.Page.Page)
			assert.Equal(t, 5, input.Page.Size)
			assert.Equal(t, ports.SortByCreatedAt, input.Page.Sort)
			assert.Equal(t, ports.SortDesc, input.Page.Direction)
			return &ports.WalletPage{
				Content:   []domain.Wallet{*wallet},
				Page:      2,
				Size:      5,
				Total:     11,
				PageCount: 3,
				SortedBy:  "created_at: DESC",
			}, nil
		})

	w := serve(r, http.MethodGet,
		"/api/v1/users/"+userID.String()+"/wallets?surname=health&page=2&size=5&sort=created_at&direction=desc", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(11), data["total"])
	assert.Equal(t, float64(3), data["total_pages"])
	assert.Equal(t, "created_at: DESC", data["sorted_by"])
}

func TestSearchWallets_InvalidPage(t *testing.T) {
	r, _ := newTestRouter(t)
	userID := uuid.New()

	w := serve(r, http.MethodGet, "/api/v1/users/"+userID.String()+"/wallets?page=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRetrieveWallet_NotFound(t *testing.T) {
	r, svc := newTestRouter(t)
	userID, walletID := uuid.New(), uuid.New()

	svc.EXPECT().
		Retrieve(gomock.Any(), userID, walletID).
		Return(nil, apperror.ErrWalletNotFound(apperror.Term("id", walletID)))

	w := serve(r, http.MethodGet, "/api/v1/users/"+userID.String()+"/wallets/"+walletID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "WLT_002", resp["error_code"])
}

func TestRetrieveDefault_RoutesBeforeWalletID(t *testing.T) {
	r, svc := newTestRouter(t)
	userID := uuid.New()
	wallet := sampleWallet(userID, "default")
	wallet.IsDefault = true

	svc.EXPECT().RetrieveDefault(gomock.Any(), userID).Return(wallet, nil)

	w := serve(r, http.MethodGet, "/api/v1/users/"+userID.String()+"/wallets/default", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["is_default"])
}

func TestUpdateWallet_MissingFieldsRejected(t *testing.T) {
	r, _ := newTestRouter(t)
	userID, walletID := uuid.New(), uuid.New()

	// PUT requires every attribute; surname alone is not enough.
	w := serve(r, http.MethodPut,
		"/api/v1/users/"+userID.String()+"/wallets/"+walletID.String(),
		[]byte(`{"surname":"vacations"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "WLT_400", resp["error_code"])
}

func TestUpdateWallet_Success(t *testing.T) {
	r, svc := newTestRouter(t)
	userID, walletID := uuid.New(), uuid.New()
	wallet := sampleWallet(userID, "renamed")
	now := time.Now()
	wallet.UpdatedAt = &now

	svc.EXPECT().
		Update(gomock.Any(), userID, walletID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, input *ports.UpdateWalletInput) (*domain.Wallet, error) {
			assert.Equal(t, "renamed", input.Surname)
			assert.False(t, input.AcceptDeposit)
			assert.True(t, input.MinBalance.Equal(decimal.RequireFromString("2.50")))
			return wallet, nil
		})

	body := []byte(`{
		"surname": "renamed",
		"is_active": true,
		"min_balance": "2.50",
		"accept_bank_transfer": true,
		"accept_payments": true,
		"accept_withdrawing": true,
		"accept_deposit": false
	}`)
	w := serve(r, http.MethodPut, "/api/v1/users/"+userID.String()+"/wallets/"+walletID.String(), body)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "renamed", data["surname"])
	assert.NotEmpty(t, data["updated_at"])
}

func TestPartialUpdateWallet_IsActiveOnly(t *testing.T) {
	r, svc := newTestRouter(t)
	userID, walletID := uuid.New(), uuid.New()
	wallet := sampleWallet(userID, "vacations")
	wallet.IsActive = false

	svc.EXPECT().
		PartialUpdate(gomock.Any(), userID, walletID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, input *ports.PatchWalletInput) (*domain.Wallet, error) {
			require.NotNil(t, input.IsActive)
			assert.False(t, *input.IsActive)
			assert.Nil(t, input.Surname)
			assert.Nil(t, input.MinBalance)
			assert.Nil(t, input.AcceptDeposit)
			return wallet, nil
		})

	w := serve(r, http.MethodPatch,
		"/api/v1/users/"+userID.String()+"/wallets/"+walletID.String(),
		[]byte(`{"is_active": false}`))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, false, data["is_active"])
}

func TestPartialUpdateWallet_EmptyBodyIsNullPayload(t *testing.T) {
	r, _ := newTestRouter(t)
	userID, walletID := uuid.New(), uuid.New()

	w := serve(r, http.MethodPatch, "/api/v1/users/"+userID.String()+"/wallets/"+walletID.String(), []byte{})

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "WLT_005", resp["error_code"])
}

func TestToggleWallet_PassesFieldParam(t *testing.T) {
	r, svc := newTestRouter(t)
	userID, walletID := uuid.New(), uuid.New()
	wallet := sampleWallet(userID, "vacations")
	wallet.AcceptPayments = false

	svc.EXPECT().
		Toggle(gomock.Any(), userID, walletID, domain.ToggleAcceptPayments).
		Return(wallet, nil)

	w := serve(r, http.MethodPatch,
		"/api/v1/users/"+userID.String()+"/wallets/"+walletID.String()+"/toggle/accept_payments", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, false, data["accept_payments"])
}

func TestToggleWallet_IsDefaultRejected(t *testing.T) {
	r, svc := newTestRouter(t)
	userID, walletID := uuid.New(), uuid.New()

	svc.EXPECT().
		Toggle(gomock.Any(), userID, walletID, domain.ToggleIsDefault).
		Return(nil, apperror.Validation("field is not toggleable: is_default"))

	w := serve(r, http.MethodPatch,
		"/api/v1/users/"+userID.String()+"/wallets/"+walletID.String()+"/toggle/is_default", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetDefaultWallet_Success(t *testing.T) {
	r, svc := newTestRouter(t)
	userID, walletID := uuid.New(), uuid.New()
	wallet := sampleWallet(userID, "health")
	wallet.IsDefault = true

	svc.EXPECT().SetDefault(gomock.Any(), userID, walletID).Return(wallet, nil)

	w := serve(r, http.MethodPatch,
		"/api/v1/users/"+userID.String()+"/wallets/"+walletID.String()+"/default", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["is_default"])
}

func TestDeleteWallet_DefaultForbidden(t *testing.T) {
	r, svc := newTestRouter(t)
	userID, walletID := uuid.New(), uuid.New()

	svc.EXPECT().
		Delete(gomock.Any(), userID, walletID).
		Return(nil, apperror.ErrDefaultWalletDeletion(walletID, "default"))

	w := serve(r, http.MethodDelete, "/api/v1/users/"+userID.String()+"/wallets/"+walletID.String(), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "WLT_004", resp["error_code"])
}

func TestDeleteWallet_ReturnsPreDeletionView(t *testing.T) {
	r, svc := newTestRouter(t)
	userID, walletID := uuid.New(), uuid.New()
	wallet := sampleWallet(userID, "vacations")

	svc.EXPECT().Delete(gomock.Any(), userID, walletID).Return(wallet, nil)

	w := serve(r, http.MethodDelete, "/api/v1/users/"+userID.String()+"/wallets/"+walletID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "vacations", data["surname"])
}

func TestHealthEndpointWithoutCheckers(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "healthy", resp["status"])
}
