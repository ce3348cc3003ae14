package server

import (
	"taraweeh/internal/models"
	"taraweeh/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateSubmission handles POST /api/submissions, the public intake form.
func (s *Server) CreateSubmission(c *fiber.Ctx) error {
	var in service.SubmitInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	submission, err := s.submissionService.Submit(c.UserContext(), in)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(submission)
}

// GetSubmissions handles GET /api/admin/submissions, the review queue.
func (s *Server) GetSubmissions(c *fiber.Ctx) error {
	submissions, err := s.reviewService.List(c.UserContext())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(submissions)
}

// ApproveSubmission handles POST /api/admin/submissions/:id/approve.
// Returns the approved submission; the published listing is created in
// the same transaction.
func (s *Server) ApproveSubmission(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	approved, err := s.reviewService.Approve(c.UserContext(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(approved)
}

// RejectSubmission handles POST /api/admin/submissions/:id/reject.
func (s *Server) RejectSubmission(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.reviewService.Reject(c.UserContext(), id); err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{"status": string(models.SubmissionStatusRejected)})
}

// UpdateSubmission handles PATCH /api/admin/submissions/:id. Only fields
// present in the body are changed; status is never editable through this
// endpoint.
func (s *Server) UpdateSubmission(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var patch service.SubmissionPatch
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.reviewService.Update(c.UserContext(), id, patch); err != nil {
		return respondAppError(c, err)
	}

	updated, err := s.submissionRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(updated)
}

// DeleteSubmission handles DELETE /api/admin/submissions/:id.
func (s *Server) DeleteSubmission(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.reviewService.Remove(c.UserContext(), id); err != nil {
		return respondAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
