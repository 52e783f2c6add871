package routes

import (
	"net/http"

	"github.com/Circulx/Fathom-Legal-sub001/auth"
	"github.com/Circulx/Fathom-Legal-sub001/blog"
	"github.com/Circulx/Fathom-Legal-sub001/contact"
	"github.com/Circulx/Fathom-Legal-sub001/gallery"
	"github.com/Circulx/Fathom-Legal-sub001/middleware"
	"github.com/Circulx/Fathom-Legal-sub001/models"
	"github.com/Circulx/Fathom-Legal-sub001/orders"
	"github.com/Circulx/Fathom-Legal-sub001/pay"
	"github.com/Circulx/Fathom-Legal-sub001/ratelim"
	"github.com/Circulx/Fathom-Legal-sub001/templates"

	"github.com/julienschmidt/httprouter"
)

// Services groups everything the routes need; constructed in main.
type Services struct {
	Auth      *auth.AuthService
	Orders    *orders.OrderService
	Payments  *pay.PaymentService
	Templates *templates.TemplateService
	Blog      *blog.BlogService
	Gallery   *gallery.GalleryService
	Contact   *contact.ContactService
}

func adminOnly(rl *ratelim.RateLimiter) func(httprouter.Handle) httprouter.Handle {
	return middleware.Chain(
		rl.Limit,
		middleware.Authenticate,
		middleware.RequireRoles(models.RoleAdmin, models.RoleSuperAdmin),
	)
}

func AddAuthRoutes(router *httprouter.Router, s *Services, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(s.Auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(s.Auth.Logout))
	router.POST("/api/auth/token/refresh", rl.Limit(s.Auth.Refresh))
}

func AddOrderRoutes(router *httprouter.Router, s *Services, rl *ratelim.RateLimiter) {
	router.POST("/api/orders", rl.Limit(s.Orders.CreateHandler))
	router.GET("/api/orders/:id/invoice", rl.Limit(middleware.OptionalAuth(s.Orders.InvoiceHandler)))

	admin := adminOnly(rl)
	router.GET("/api/orders", admin(s.Orders.ListHandler))
	router.GET("/api/orders/:id", admin(s.Orders.GetHandler))
	router.PUT("/api/orders/:id/status", admin(s.Orders.UpdateStatusHandler))
}

func AddPayRoutes(router *httprouter.Router, s *Services, rl *ratelim.RateLimiter) {
	router.POST("/api/payments/session", rl.Limit(s.Payments.CreateSessionHandler))
	router.GET("/api/payments/verify", s.Payments.VerifyRedirectHandler)
	router.POST("/api/payments/verify", rl.Limit(s.Payments.VerifyHandler))
}

func AddTemplateRoutes(router *httprouter.Router, s *Services, rl *ratelim.RateLimiter) {
	router.GET("/api/templates", s.Templates.ListHandler)
	router.GET("/api/templates/:id", s.Templates.GetHandler)
	router.GET("/api/templates/:id/download", rl.Limit(s.Templates.DownloadHandler))

	admin := adminOnly(rl)
	router.POST("/api/templates", admin(s.Templates.CreateHandler))
	router.PUT("/api/templates/:id", admin(s.Templates.UpdateHandler))
	router.DELETE("/api/templates/:id", admin(s.Templates.DeleteHandler))
	router.POST("/api/templates/:id/file", admin(s.Templates.UploadFileHandler))
	router.POST("/api/templates/:id/preview", admin(s.Templates.UploadPreviewHandler))
}

func AddBlogRoutes(router *httprouter.Router, s *Services, rl *ratelim.RateLimiter) {
	router.GET("/api/blog", middleware.OptionalAuth(s.Blog.ListHandler))
	router.GET("/api/blog/:id", s.Blog.GetHandler)

	admin := adminOnly(rl)
	router.POST("/api/blog", admin(s.Blog.CreateHandler))
	router.PUT("/api/blog/:id", admin(s.Blog.UpdateHandler))
	router.DELETE("/api/blog/:id", admin(s.Blog.DeleteHandler))
}

func AddGalleryRoutes(router *httprouter.Router, s *Services, rl *ratelim.RateLimiter) {
	router.GET("/api/gallery", s.Gallery.ListHandler)

	admin := adminOnly(rl)
	router.POST("/api/gallery", admin(s.Gallery.UploadHandler))
	router.DELETE("/api/gallery/:id", admin(s.Gallery.DeleteHandler))
}

func AddContactRoutes(router *httprouter.Router, s *Services, rl *ratelim.RateLimiter) {
	router.POST("/api/contact", rl.Limit(s.Contact.SubmitHandler))
	router.GET("/api/contact", adminOnly(rl)(s.Contact.ListHandler))
}

// AddStaticRoutes serves the legacy local uploads that predate the bucket.
func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/uploads/*filepath", http.Dir("uploads"))
}

func RoutesWrapper(router *httprouter.Router, s *Services, rl *ratelim.RateLimiter) {
	AddAuthRoutes(router, s, rl)
	AddOrderRoutes(router, s, rl)
	AddPayRoutes(router, s, rl)
	AddTemplateRoutes(router, s, rl)
	AddBlogRoutes(router, s, rl)
	AddGalleryRoutes(router, s, rl)
	AddContactRoutes(router, s, rl)
	AddStaticRoutes(router)
}
