package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vnkhanh/video-catalog-backend/config"
	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/services"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

var testJWT = config.JWTConfig{
	Secret:    "middleware-test-secret",
	ExpiresIn: time.Hour,
	Audience:  "video-catalog",
	Issuer:    "video-catalog-backend",
}

type fixture struct {
	db    *gorm.DB
	auth  *Auth
	admin models.User
	owner models.User
	other models.User
	video models.Video
	doc   models.UrlDocument
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Video{},
		&models.Topic{},
		&models.VideoTopic{},
		&models.UrlDocument{},
		&models.UserVideo{},
	))

	adminRole := models.Role{Name: models.RoleAdmin}
	userRole := models.Role{Name: models.RoleUser}
	require.NoError(t, db.Create(&adminRole).Error)
	require.NoError(t, db.Create(&userRole).Error)

	newUser := func(username string, role models.Role) models.User {
		salt := utils.NewSalt()
		user := models.User{
			Username:        username,
			Email:           username + "@example.com",
			EncryptPassword: utils.SecurePassword(salt, "password"),
			Salt:            salt,
			RoleID:          role.ID,
		}
		require.NoError(t, db.Create(&user).Error)
		return user
	}

	f := &fixture{db: db}
	f.admin = newUser("admin", adminRole)
	f.owner = newUser("owner", userRole)
	f.other = newUser("other", userRole)

	f.video = models.Video{
		Title:           "Video sở hữu",
		Description:     "mô tả",
		Duration:        "PT10M",
		DefaultLanguage: "en",
		DataType:        models.DataTypeVideo,
		UserID:          f.owner.ID,
	}
	require.NoError(t, db.Create(&f.video).Error)

	f.doc = models.UrlDocument{
		Name:    "Tài liệu",
		URLLink: "https://example.com/doc.pdf",
		VideoID: f.video.ID,
	}
	require.NoError(t, db.Create(&f.doc).Error)

	videoTopics := services.NewVideoTopicService(db)
	videos := services.NewVideoService(db, videoTopics)
	documents := services.NewDocumentService(db, videos)
	f.auth = NewAuth(testJWT, services.NewRoleService(db), videos, documents)
	return f
}

func (f *fixture) tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(testJWT, user.ID.String(), user.RoleID.String())
	require.NoError(t, err)
	return token
}

// perform chạy request qua chuỗi gate, handler cuối trả 200
func perform(t *testing.T, handlers []gin.HandlerFunc, method, path, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.Handle(method, "/video/:videoId", handlers...)
	r.Handle(method, "/document/:documentId", handlers...)
	r.Handle(method, "/user/:userId", handlers...)

	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckJWT(t *testing.T) {
	f := newFixture(t)
	chain := []gin.HandlerFunc{f.auth.CheckJWT()}
	path := "/video/" + f.video.ID.String()

	// Thiếu header
	w := perform(t, chain, http.MethodGet, path, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token rác
	w = perform(t, chain, http.MethodGet, path, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token hợp lệ, dạng Bearer
	w = perform(t, chain, http.MethodGet, path, "Bearer "+f.tokenFor(t, f.owner))
	assert.Equal(t, http.StatusOK, w.Code)

	// Token trần vẫn chấp nhận
	w = perform(t, chain, http.MethodGet, path, f.tokenFor(t, f.owner))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	f := newFixture(t)
	chain := []gin.HandlerFunc{f.auth.CheckJWT(), f.auth.RequireAdmin()}
	path := "/user/" + f.other.ID.String()

	w := perform(t, chain, http.MethodDelete, path, "Bearer "+f.tokenFor(t, f.admin))
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(t, chain, http.MethodDelete, path, "Bearer "+f.tokenFor(t, f.owner))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSelfOrAdmin(t *testing.T) {
	f := newFixture(t)
	chain := []gin.HandlerFunc{f.auth.CheckJWT(), f.auth.SelfOrAdmin()}
	path := "/user/" + f.owner.ID.String()

	// Chính mình
	w := perform(t, chain, http.MethodGet, path, "Bearer "+f.tokenFor(t, f.owner))
	assert.Equal(t, http.StatusOK, w.Code)

	// Admin xem người khác
	w = perform(t, chain, http.MethodGet, path, "Bearer "+f.tokenFor(t, f.admin))
	assert.Equal(t, http.StatusOK, w.Code)

	// Người khác không phải admin
	w = perform(t, chain, http.MethodGet, path, "Bearer "+f.tokenFor(t, f.other))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVideoOwner(t *testing.T) {
	f := newFixture(t)
	chain := []gin.HandlerFunc{f.auth.CheckJWT(), f.auth.VideoOwner()}
	path := "/video/" + f.video.ID.String()

	// Chủ sở hữu
	w := perform(t, chain, http.MethodDelete, path, "Bearer "+f.tokenFor(t, f.owner))
	assert.Equal(t, http.StatusOK, w.Code)

	// Admin không sở hữu vẫn qua
	w = perform(t, chain, http.MethodDelete, path, "Bearer "+f.tokenFor(t, f.admin))
	assert.Equal(t, http.StatusOK, w.Code)

	// Người lạ bị chặn
	w = perform(t, chain, http.MethodDelete, path, "Bearer "+f.tokenFor(t, f.other))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Video không tồn tại phải trả NotFound trước khi xét quyền,
// kể cả khi người gọi không có quyền trên resource
func TestVideoOwnerNotFoundPrecedence(t *testing.T) {
	f := newFixture(t)
	chain := []gin.HandlerFunc{f.auth.CheckJWT(), f.auth.VideoOwner()}
	path := "/video/" + uuid.NewString()

	w := perform(t, chain, http.MethodDelete, path, "Bearer "+f.tokenFor(t, f.other))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// videoId không phải uuid
	w = perform(t, chain, http.MethodDelete, "/video/abc", "Bearer "+f.tokenFor(t, f.other))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentOwner(t *testing.T) {
	f := newFixture(t)
	chain := []gin.HandlerFunc{f.auth.CheckJWT(), f.auth.DocumentOwner()}
	path := "/document/" + f.doc.ID.String()

	// Quyền sở hữu đi qua video cha
	w := perform(t, chain, http.MethodDelete, path, "Bearer "+f.tokenFor(t, f.owner))
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(t, chain, http.MethodDelete, path, "Bearer "+f.tokenFor(t, f.other))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = perform(t, chain, http.MethodDelete, "/document/"+uuid.NewString(), "Bearer "+f.tokenFor(t, f.other))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
