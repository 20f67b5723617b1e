package routes

import (
	"BabyNest/controllers"
	"BabyNest/middlewares"
	"BabyNest/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Controllers bundles every handler set the router mounts.
type Controllers struct {
	Auth     *controllers.AuthController
	Parent   *controllers.ParentController
	Child    *controllers.ChildController
	Activity *controllers.ActivityController
	Care     *controllers.CareController
	Catalog  *controllers.CatalogController
	Shop     *controllers.ShopController
	Chat     *controllers.ChatController
	Admin    *controllers.AdminController
	Support  *controllers.SupportController
}

func RegisterRoutes(r *gin.Engine, auth *middlewares.AuthMiddleware, children controllers.ChildUseCase, ctl Controllers, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// Public routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", ctl.Auth.Signup)
		authGroup.POST("/verify-otp", ctl.Auth.VerifyOTP)
		authGroup.POST("/resend-otp", ctl.Auth.ResendOTP)
		authGroup.POST("/login", ctl.Auth.Login)
		authGroup.POST("/google", ctl.Auth.GoogleLogin)
		authGroup.POST("/forgot-password", ctl.Auth.ForgotPassword)
		authGroup.POST("/change-password", ctl.Auth.ChangePassword)
		authGroup.POST("/logout", ctl.Auth.Logout)
		authGroup.POST("/accept-invitation", ctl.Support.AcceptInvitation)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(auth.RequireAuth())

	parentOnly := middlewares.RequireRole(models.RoleParent, models.RoleAdmin)

	protected.POST("/devices", ctl.Parent.RegisterDevice)
	protected.POST("/upload", ctl.Chat.Upload)

	parents := protected.Group("/parents/:parentId")
	{
		parents.GET("", middlewares.RequireSelf("parentId"), ctl.Parent.ReadParent)
		parents.PATCH("", middlewares.RequireSelf("parentId"), ctl.Parent.UpdateParent)
		parents.POST("/childs", middlewares.RequireSelf("parentId"), ctl.Child.CreateChild)
		parents.GET("/childs", middlewares.RequireSelf("parentId"), ctl.Child.ListChildren)
		parents.POST("/invite", middlewares.RequireSelf("parentId"), ctl.Support.InviteParent)
		parents.POST("/queries", middlewares.RequireSelf("parentId"), ctl.Support.CreateQuery)
		parents.GET("/queries", middlewares.RequireSelf("parentId"), ctl.Support.ListParentQueries)
	}

	child := parents.Group("/childs/:childId")
	child.Use(controllers.ChildScope(children, log))
	{
		child.GET("", ctl.Child.ReadChild)
		child.PATCH("", parentOnly, ctl.Child.UpdateChild)
		child.DELETE("", parentOnly, ctl.Child.DeleteChild)
		child.GET("/tip-of-the-day", ctl.Child.TipOfTheDay)
		child.GET("/dashboard", ctl.Child.Dashboard)

		child.GET("/growth", ctl.Child.ListGrowth)
		child.POST("/growth", ctl.Child.AddGrowth)

		activities := child.Group("/activities")
		activities.POST("/sleep/start", ctl.Activity.StartSleep)
		activities.POST("/sleep/end", ctl.Activity.EndSleep)
		activities.GET("/sleep", ctl.Activity.ListSleeps)
		activities.POST("/temperature", ctl.Activity.AddTemperature)
		activities.GET("/temperature", ctl.Activity.ListTemperatures)
		activities.GET("/latest", ctl.Activity.Latest)

		activities.POST("/feed/schedule", parentOnly, ctl.Activity.CreateSchedule)
		activities.GET("/feed/schedule", ctl.Activity.ListSchedules)
		activities.GET("/feed/schedule/:scheduleId", ctl.Activity.GetSchedule)
		activities.PATCH("/feed/schedule/:scheduleId/switch", parentOnly, ctl.Activity.SwitchSchedule)
		activities.DELETE("/feed/schedule/:scheduleId", parentOnly, ctl.Activity.DeleteSchedule)
		activities.POST("/feed/taken", ctl.Activity.LogFeed)
		activities.GET("/feed/progress", ctl.Activity.FeedProgress)

		child.GET("/milestones", ctl.Care.ListMilestones)
		child.POST("/milestones/progress", ctl.Care.SetMilestoneProgress)
		child.GET("/vaccinations", ctl.Care.ListVaccinations)
		child.PATCH("/vaccinations/:vaccinationId", ctl.Care.UpdateVaccination)

		child.POST("/relations", parentOnly, ctl.Care.CreateRelation)
		child.GET("/relations", ctl.Care.ListRelations)
		child.DELETE("/relations/:relationId", parentOnly, ctl.Care.RemoveRelation)
	}

	protected.DELETE("/relatives/:relativeId/leave", middlewares.RequireRole(models.RoleRelative), ctl.Care.LeaveRelation)

	// Catalog
	protected.GET("/categories", ctl.Catalog.ListCategories)
	protected.GET("/products", ctl.Catalog.ListProducts)
	protected.GET("/products/:productId", ctl.Catalog.GetProduct)
	protected.GET("/music", ctl.Catalog.ListMusic)
	suppliers := protected.Group("/suppliers/:supplierId")
	suppliers.Use(middlewares.RequireRole(models.RoleSupplier, models.RoleAdmin), middlewares.RequireSelf("supplierId"))
	{
		suppliers.POST("/products", ctl.Catalog.CreateProduct)
		suppliers.GET("/dashboard", ctl.Admin.SupplierDashboard)
	}
	artists := protected.Group("/artists/:artistId")
	artists.Use(middlewares.RequireRole(models.RoleArtist, models.RoleAdmin), middlewares.RequireSelf("artistId"))
	{
		artists.POST("/music", ctl.Catalog.CreateMusic)
		artists.GET("/dashboard", ctl.Admin.ArtistDashboard)
	}

	shoppers := protected.Group("/shoppers/:ownerId")
	{
		shoppers.GET("/cart", ctl.Shop.GetCart)
		shoppers.POST("/cart", ctl.Shop.AddToCart)
		shoppers.PATCH("/cart/:itemId", ctl.Shop.ReduceCartItem)
		shoppers.DELETE("/cart/:itemId", ctl.Shop.RemoveCartItem)

		shoppers.POST("/orders", ctl.Shop.CreateOrder)
		shoppers.GET("/orders", ctl.Shop.ListOrders)

		shoppers.POST("/favorites/products", ctl.Shop.ToggleProductFavorite)
		shoppers.GET("/favorites/products", ctl.Shop.ListProductFavorites)
		shoppers.POST("/favorites/music", ctl.Shop.ToggleMusicFavorite)
		shoppers.GET("/favorites/music", ctl.Shop.ListMusicFavorites)

		shoppers.POST("/purchases/music", ctl.Shop.PurchaseMusic)
		shoppers.GET("/purchases/music", ctl.Shop.ListPurchases)
	}

	// Messaging
	protected.GET("/messages/:ownerId", ctl.Chat.ListMessages)
	chats := protected.Group("/chats/:ownerId")
	chats.Use(middlewares.RequireSelf("ownerId"))
	{
		chats.POST("", ctl.Chat.CreateChat)
		chats.GET("", ctl.Chat.ListChats)
		chats.POST("/:chatId/messages", ctl.Chat.SendMessage)
		chats.GET("/:chatId/messages", ctl.Chat.ListChatMessages)
	}
	protected.GET("/ws/chats/:chatId", ctl.Chat.ServeWs)

	// Admin
	admin := protected.Group("/admin/:adminId")
	admin.Use(middlewares.RequireRole(models.RoleAdmin), middlewares.RequireSelf("adminId"))
	{
		admin.GET("/dashboard", ctl.Admin.Dashboard)

		admin.POST("/categories", ctl.Catalog.CreateCategory)
		admin.PATCH("/categories/:categoryId", ctl.Catalog.UpdateCategory)
		admin.DELETE("/categories/:categoryId", ctl.Catalog.DeleteCategory)
		admin.POST("/categories/:categoryId/subcategories", ctl.Catalog.CreateSubCategory)
		admin.DELETE("/subcategories/:subCategoryId", ctl.Catalog.DeleteSubCategory)

		admin.POST("/suppliers", ctl.Admin.CreateSupplier)
		admin.GET("/suppliers", ctl.Admin.ListSuppliers)
		admin.PATCH("/suppliers/:supplierId", ctl.Admin.UpdateSupplier)
		admin.DELETE("/suppliers/:supplierId", ctl.Admin.DeleteSupplier)
		admin.POST("/artists", ctl.Admin.CreateArtist)
		admin.GET("/artists", ctl.Admin.ListArtists)
		admin.PATCH("/artists/:artistId", ctl.Admin.UpdateArtist)
		admin.DELETE("/artists/:artistId", ctl.Admin.DeleteArtist)

		admin.POST("/milestones", ctl.Care.CreateMilestone)
		admin.PATCH("/milestones/:milestoneId", ctl.Care.UpdateMilestone)
		admin.DELETE("/milestones/:milestoneId", ctl.Care.DeleteMilestone)
		admin.POST("/milestones/:milestoneId/sub-milestones", ctl.Care.CreateSubMilestone)
		admin.PATCH("/sub-milestones/:subMilestoneId", ctl.Care.UpdateSubMilestone)
		admin.DELETE("/sub-milestones/:subMilestoneId", ctl.Care.DeleteSubMilestone)
		admin.POST("/vaccinations", ctl.Care.CreateVaccination)
		admin.PATCH("/vaccinations/:vaccinationId", ctl.Care.EditVaccination)
		admin.DELETE("/vaccinations/:vaccinationId", ctl.Care.DeleteVaccination)

		admin.GET("/queries", ctl.Support.ListQueries)
		admin.GET("/queries/:queryId", ctl.Support.GetQuery)
		admin.PATCH("/queries/:queryId", ctl.Support.UpdateQuery)
		admin.DELETE("/queries/:queryId", ctl.Support.DeleteQuery)

		admin.GET("/orders", ctl.Admin.ListOrders)
		admin.GET("/orders/export", ctl.Admin.ExportOrders)
		admin.PATCH("/orders/:orderId", ctl.Admin.UpdateOrderStatus)
	}
}
