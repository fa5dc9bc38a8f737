package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth          *AuthHandler
	Profile       *ProfileHandler
	Project       *ProjectHandler
	Skill         *SkillHandler
	Education     *EducationHandler
	Experience    *ExperienceHandler
	Certification *CertificationHandler
	Blog          *BlogHandler
	Quote         *QuoteHandler
	Contact       *ContactHandler
	Portfolio     *PortfolioHandler
	Backup        *BackupHandler
}

type Middlewares struct {
	Auth         gin.HandlerFunc
	Error        gin.HandlerFunc
	RequestLog   gin.HandlerFunc
	LoginLimit   gin.HandlerFunc
	ContactLimit gin.HandlerFunc
}

// NewRouter builds the gin engine. Forwarding headers are honoured only from
// trustedProxies; with none, the client IP is the peer address.
func NewRouter(h Handlers, mw Middlewares, trustedProxies []string) (*gin.Engine, error) {
	router := gin.New()
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}
	router.Use(gin.Recovery(), mw.RequestLog, mw.Error)

	api := router.Group("/api")
	{
		admin := api.Group("/admin")
		{
			adminAuth := admin.Group("/auth")
			adminAuth.POST("/login", mw.LoginLimit, h.Auth.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(mw.Auth)
			{
				adminPrivate.POST("/auth/logout", h.Auth.Logout)
				adminPrivate.GET("/session", h.Auth.Session)

				adminPrivate.GET("/profile", h.Profile.GetProfile)
				adminPrivate.PUT("/profile", h.Profile.UpdateProfile)

				projects := adminPrivate.Group("/projects")
				{
					projects.GET("", h.Project.ListProjects)
					projects.POST("", h.Project.CreateProject)
					projects.PUT("/order", h.Project.ReorderProjects)
					projects.GET("/:id", h.Project.GetProject)
					projects.PUT("/:id", h.Project.UpdateProject)
					projects.DELETE("/:id", h.Project.DeleteProject)
					projects.POST("/:id/image", h.Project.UploadImage)
				}

				skills := adminPrivate.Group("/skills")
				{
					skills.GET("", h.Skill.ListSkills)
					skills.POST("", h.Skill.CreateSkill)
					skills.PUT("/order", h.Skill.ReorderSkills)
					skills.GET("/:id", h.Skill.GetSkill)
					skills.PUT("/:id", h.Skill.UpdateSkill)
					skills.DELETE("/:id", h.Skill.DeleteSkill)
				}

				education := adminPrivate.Group("/education")
				{
					education.GET("", h.Education.ListEducation)
					education.POST("", h.Education.CreateEducation)
					education.PUT("/order", h.Education.ReorderEducation)
					education.GET("/:id", h.Education.GetEducation)
					education.PUT("/:id", h.Education.UpdateEducation)
					education.DELETE("/:id", h.Education.DeleteEducation)
				}

				experience := adminPrivate.Group("/experience")
				{
					experience.GET("", h.Experience.ListExperience)
					experience.POST("", h.Experience.CreateExperience)
					experience.PUT("/order", h.Experience.ReorderExperience)
					experience.GET("/:id", h.Experience.GetExperience)
					experience.PUT("/:id", h.Experience.UpdateExperience)
					experience.DELETE("/:id", h.Experience.DeleteExperience)
				}

				certifications := adminPrivate.Group("/certifications")
				{
					certifications.GET("", h.Certification.ListCertifications)
					certifications.POST("", h.Certification.CreateCertification)
					certifications.PUT("/order", h.Certification.ReorderCertifications)
					certifications.GET("/:id", h.Certification.GetCertification)
					certifications.PUT("/:id", h.Certification.UpdateCertification)
					certifications.DELETE("/:id", h.Certification.DeleteCertification)
				}

				posts := adminPrivate.Group("/blog")
				{
					posts.GET("", h.Blog.ListPosts)
					posts.POST("", h.Blog.CreatePost)
					posts.GET("/:id", h.Blog.GetPost)
					posts.PUT("/:id", h.Blog.UpdatePost)
					posts.DELETE("/:id", h.Blog.DeletePost)
					posts.POST("/:id/cover", h.Blog.UploadCover)
				}

				quotes := adminPrivate.Group("/quotes")
				{
					quotes.GET("", h.Quote.ListQuotes)
					quotes.POST("", h.Quote.CreateQuote)
					quotes.PUT("/:id", h.Quote.UpdateQuote)
					quotes.DELETE("/:id", h.Quote.DeleteQuote)
				}

				messages := adminPrivate.Group("/messages")
				{
					messages.GET("", h.Contact.ListMessages)
					messages.PUT("/:id/read", h.Contact.MarkRead)
					messages.DELETE("/:id", h.Contact.DeleteMessage)
				}

				adminPrivate.POST("/backup", h.Backup.TriggerBackup)
			}
		}

		public := api.Group("/")
		{
			public.GET("/health", Health)
			public.GET("/portfolio", h.Portfolio.GetPortfolio)
			public.GET("/profile", h.Profile.GetPublicProfile)
			public.GET("/projects", h.Project.ListPublicProjects)
			public.GET("/projects/:id", h.Project.GetProject)
			public.GET("/skills", h.Skill.ListPublicSkills)
			public.GET("/skills/grouped", h.Skill.ListGroupedSkills)
			public.GET("/education", h.Education.ListPublicEducation)
			public.GET("/experience", h.Experience.ListPublicExperience)
			public.GET("/certifications", h.Certification.ListPublicCertifications)
			public.GET("/blog", h.Blog.ListPublicPosts)
			public.GET("/blog/rss.xml", h.Blog.RSS)
			public.GET("/blog/:slug", h.Blog.GetPublicPost)
			public.GET("/quotes/random", h.Quote.RandomQuote)
			public.POST("/contact", mw.ContactLimit, h.Contact.SubmitMessage)
		}
	}

	return router, nil
}
