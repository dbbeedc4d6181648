package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"estate-portal/internal/config"
	"estate-portal/internal/database"
	"estate-portal/internal/models"
	"estate-portal/internal/ratelimit"
	"estate-portal/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4, 0x89,
}

type testEnv struct {
	handler *Handler
	router  *gin.Engine
	db      *database.GormDB
	store   *storage.MediaStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	db := database.NewFromDB(gdb)
	require.NoError(t, db.InitSchema())

	store, err := storage.NewMediaStore(t.TempDir())
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.Auth.BcryptCost = bcrypt.MinCost

	log := logrus.New()
	log.SetOutput(io.Discard)

	limiter := ratelimit.NewLimiter(100, 0, true)
	h := NewHandler(db, nil, store, limiter, nil, cfg, log)

	router := gin.New()
	h.RegisterRoutes(router)

	return &testEnv{handler: h, router: router, db: db, store: store}
}

func (e *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) register(t *testing.T, username, userType string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"username":         username,
		"email":            username + "@example.com",
		"password":         "password123",
		"password_confirm": "password123",
		"user_type":        userType,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := e.do(t, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

var listingFields = map[string]string{
	"title_en":       "Cozy Apartment in Maadi",
	"title_ar":       "شقة مريحة في المعادي",
	"description_en": "Fully furnished apartment near the metro.",
	"description_ar": "شقة مفروشة بالكامل بالقرب من المترو.",
	"location_en":    "Maadi, Cairo",
	"location_ar":    "المعادي، القاهرة",
	"price":          "18000",
	"property_type":  "Apartment",
	"sale_type":      "Rent",
	"phone":          "+20 100 123 4567",
}

func multipartRequest(t *testing.T, method, url string, fields map[string]string, images int) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for i := 0; i < images; i++ {
		fw, err := mw.CreateFormFile("images", "photo.png")
		require.NoError(t, err)
		_, err = fw.Write(pngBytes)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func (e *testEnv) createListing(t *testing.T, token string) uint {
	t.Helper()
	req := multipartRequest(t, http.MethodPost, "/api/properties", listingFields, 1)
	req.Header.Set("Authorization", "Bearer "+token)
	w := e.do(t, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var view models.PropertyView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.NotZero(t, view.ID)
	return view.ID
}

func (e *testEnv) countProperties(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.DB().Model(&models.Property{}).Count(&n).Error)
	return n
}

func TestCreateRequiresSeller(t *testing.T) {
	env := newTestEnv(t)
	buyerToken := env.register(t, "buyer1", "buyer")

	req := multipartRequest(t, http.MethodPost, "/api/properties", listingFields, 1)
	req.Header.Set("Authorization", "Bearer "+buyerToken)
	w := env.do(t, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Only sellers can add properties.")
	assert.Zero(t, env.countProperties(t))
}

func TestCreateRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	req := multipartRequest(t, http.MethodPost, "/api/properties", listingFields, 1)
	w := env.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateListing(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "seller1", "seller")
	id := env.createListing(t, token)

	property, err := env.db.GetActiveProperty(id)
	require.NoError(t, err)
	assert.Equal(t, "Cozy Apartment in Maadi", property.TitleEN)
	require.Len(t, property.Images, 1)

	// the uploaded file landed under the media root
	_, err = os.Stat(filepath.Join(env.store.Root(), filepath.FromSlash(property.Images[0].StoragePath)))
	assert.NoError(t, err)
}

func TestCreateListingValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "seller1", "seller")

	fields := map[string]string{}
	for k, v := range listingFields {
		fields[k] = v
	}
	fields["price"] = "not-a-number"
	fields["title_en"] = ""

	req := multipartRequest(t, http.MethodPost, "/api/properties", fields, 0)
	req.Header.Set("Authorization", "Bearer "+token)
	w := env.do(t, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Enter a valid number.")
	assert.Contains(t, w.Body.String(), "This field is required.")
	assert.Zero(t, env.countProperties(t))
}

func TestListLocalization(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "seller1", "seller")
	env.createListing(t, token)

	w := env.do(t, httptest.NewRequest(http.MethodGet, "/api/properties?lang=ar", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var arResp struct {
		Properties []models.PropertyView `json:"properties"`
		Language   string                `json:"language"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &arResp))
	require.Len(t, arResp.Properties, 1)
	assert.Equal(t, "ar", arResp.Language)
	assert.Equal(t, "شقة مريحة في المعادي", arResp.Properties[0].Title)

	w = env.do(t, httptest.NewRequest(http.MethodGet, "/api/properties", nil))
	var enResp struct {
		Properties []models.PropertyView `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &enResp))
	assert.Equal(t, "Cozy Apartment in Maadi", enResp.Properties[0].Title)
}

func TestDetailCountsViews(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "seller1", "seller")
	id := env.createListing(t, token)

	url := "/api/properties/" + itoa(id)
	require.Equal(t, http.StatusOK, env.do(t, httptest.NewRequest(http.MethodGet, url, nil)).Code)
	require.Equal(t, http.StatusOK, env.do(t, httptest.NewRequest(http.MethodGet, url, nil)).Code)

	property, err := env.db.GetActiveProperty(id)
	require.NoError(t, err)
	assert.Equal(t, 2, property.Views)
}

func TestDetailNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, httptest.NewRequest(http.MethodGet, "/api/properties/12345", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Property not found")

	w = env.do(t, httptest.NewRequest(http.MethodGet, "/api/properties/abc", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ownerToken := env.register(t, "owner", "seller")
	otherToken := env.register(t, "other", "seller")
	id := env.createListing(t, ownerToken)

	fields := map[string]string{}
	for k, v := range listingFields {
		fields[k] = v
	}
	fields["title_en"] = "Hijacked"

	req := multipartRequest(t, http.MethodPut, "/api/properties/"+itoa(id), fields, 0)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	w := env.do(t, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "You can only edit your own properties.")

	property, err := env.db.GetActiveProperty(id)
	require.NoError(t, err)
	assert.Equal(t, "Cozy Apartment in Maadi", property.TitleEN)
}

func TestUpdateListing(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "owner", "seller")
	id := env.createListing(t, token)

	before, err := env.db.GetActiveProperty(id)
	require.NoError(t, err)
	require.Len(t, before.Images, 1)
	oldImage := before.Images[0]

	fields := map[string]string{}
	for k, v := range listingFields {
		fields[k] = v
	}
	fields["title_en"] = "Renovated Apartment in Maadi"
	fields["price"] = "19500"
	fields["remove_images"] = itoa64(oldImage.ID)

	req := multipartRequest(t, http.MethodPut, "/api/properties/"+itoa(id), fields, 1)
	req.Header.Set("Authorization", "Bearer "+token)
	w := env.do(t, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	after, err := env.db.GetActiveProperty(id)
	require.NoError(t, err)
	assert.Equal(t, "Renovated Apartment in Maadi", after.TitleEN)
	assert.Equal(t, 19500.0, after.Price)
	require.Len(t, after.Images, 1)
	assert.NotEqual(t, oldImage.ID, after.Images[0].ID)

	// the removed image's file is gone from disk
	_, statErr := os.Stat(filepath.Join(env.store.Root(), filepath.FromSlash(oldImage.StoragePath)))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDeleteOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ownerToken := env.register(t, "owner", "seller")
	otherToken := env.register(t, "other", "seller")
	id := env.createListing(t, ownerToken)

	req := httptest.NewRequest(http.MethodDelete, "/api/properties/"+itoa(id), nil)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	w := env.do(t, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "You can only delete your own properties.")
	assert.Equal(t, int64(1), env.countProperties(t))
}

func TestDeleteListing(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "owner", "seller")
	id := env.createListing(t, token)

	property, err := env.db.GetActiveProperty(id)
	require.NoError(t, err)
	imagePath := property.Images[0].StoragePath

	req := httptest.NewRequest(http.MethodDelete, "/api/properties/"+itoa(id), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := env.do(t, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Zero(t, env.countProperties(t))
	_, statErr := os.Stat(filepath.Join(env.store.Root(), filepath.FromSlash(imagePath)))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoginFlow(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "buyer")

	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := env.do(t, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	profileReq := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	profileReq.Header.Set("Authorization", "Bearer "+resp.Token)
	w = env.do(t, profileReq)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")

	// logout revokes the token
	logoutReq := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	logoutReq.Header.Set("Authorization", "Bearer "+resp.Token)
	require.Equal(t, http.StatusOK, env.do(t, logoutReq).Code)

	profileReq = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	profileReq.Header.Set("Authorization", "Bearer "+resp.Token)
	assert.Equal(t, http.StatusUnauthorized, env.do(t, profileReq).Code)
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "buyer")

	body, _ := json.Marshal(map[string]string{"username": "alice", "password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := env.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")
}

func TestLoginRateLimited(t *testing.T) {
	env := newTestEnv(t)
	env.handler.limiter = ratelimit.NewLimiter(2, 0, true)

	body, _ := json.Marshal(map[string]string{"username": "nobody", "password": "x"})
	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		last = env.do(t, req).Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "buyer")

	body, _ := json.Marshal(map[string]string{
		"username":         "alice",
		"email":            "alice2@example.com",
		"password":         "password123",
		"password_confirm": "password123",
		"user_type":        "seller",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := env.do(t, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "alice", "buyer")

	req := multipartRequest(t, http.MethodPut, "/api/profile", map[string]string{
		"username": "alice",
		"email":    "alice@new.example.com",
		"phone":    "+20 111 222 3333",
	}, 0)
	req.Header.Set("Authorization", "Bearer "+token)
	w := env.do(t, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	user, err := env.db.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@new.example.com", user.Email)
	require.NotNil(t, user.Profile.Phone)
	assert.Equal(t, "+20 111 222 3333", *user.Profile.Phone)
}

func TestUpdateProfileWithoutProfileRow(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "alice", "buyer")

	// simulate an account whose profile row was removed externally
	account, err := env.db.GetUserByUsername("alice")
	require.NoError(t, err)
	require.NoError(t, env.db.DB().Where("user_id = ?", account.ID).Delete(&models.UserProfile{}).Error)

	req := multipartRequest(t, http.MethodPut, "/api/profile", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"phone":    "",
	}, 0)
	req.Header.Set("Authorization", "Bearer "+token)
	w := env.do(t, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	user, err := env.db.GetUserByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, user.Profile)
	assert.Equal(t, models.UserTypeBuyer, user.Profile.UserType)
}

func TestSetLanguage(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/set-language?lang=ar", nil)
	req.Header.Set("Referer", "/api/properties")
	w := env.do(t, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/api/properties", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "lang" && c.Value == "ar" {
			found = true
		}
	}
	assert.True(t, found, "lang cookie not set")

	// no referer falls back to the root
	w = env.do(t, httptest.NewRequest(http.MethodPost, "/api/set-language?lang=en", nil))
	assert.Equal(t, "/", w.Header().Get("Location"))

	// unknown codes are rejected
	w = env.do(t, httptest.NewRequest(http.MethodPost, "/api/set-language?lang=fr", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func (e *testEnv) makeStaff(t *testing.T, username string) {
	t.Helper()
	require.NoError(t, e.db.DB().Model(&models.User{}).
		Where("username = ?", username).Update("is_staff", true).Error)
}

func TestAdminRequiresStaff(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "buyer1", "buyer")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := env.do(t, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Staff access required")

	reindexReq := httptest.NewRequest(http.MethodPost, "/api/admin/reindex", nil)
	reindexReq.Header.Set("Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, env.do(t, reindexReq).Code)

	// anonymous requests are rejected before the staff check
	assert.Equal(t, http.StatusUnauthorized,
		env.do(t, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)).Code)
}

func TestAdminStats(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "seller1", "seller")
	env.createListing(t, token)
	env.makeStaff(t, "seller1")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := env.do(t, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Properties map[string]int64 `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Properties["active"])
	assert.Equal(t, int64(1), resp.Properties["type_apartment"])
}

func itoa(v uint) string    { return strconv.FormatUint(uint64(v), 10) }
func itoa64(v int64) string { return strconv.FormatInt(v, 10) }
