package routes

import "github.com/gofiber/fiber/v3"

func (r *Registry) registerV1(v1 fiber.Router) {
	if v1 == nil {
		return
	}

	authGroup := v1.Group("/auth")
	r.Auth.RegisterRoutes(authGroup)

	// Posting and applying attach the caller's identity when a token is
	// present but never require one.
	jobsGroup := v1.Group("/jobs", r.AuthMW.OptionalMiddleware())
	r.Jobs.RegisterRoutes(jobsGroup)

	resumesGroup := v1.Group("/resumes")
	r.Resumes.RegisterRoutes(resumesGroup)

	interviewsGroup := v1.Group("/interviews")
	r.Interview.RegisterRoutes(interviewsGroup)
}
