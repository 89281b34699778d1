package controllers

import (
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/camilon-dental/clinic-api/utils"
)

// Payment proofs are phone screenshots; anything bigger than 5 MB or not
// an image is rejected before the upload is attempted.
const maxProofSize = 5 << 20

func validateProofUpload(header *multipart.FileHeader) error {
	if header.Size > maxProofSize {
		return fiber.NewError(fiber.StatusBadRequest, "File exceeds the 5 MB limit.")
	}
	switch header.Header.Get("Content-Type") {
	case "image/jpeg", "image/png":
		return nil
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Only JPEG and PNG images are accepted.")
	}
}

// UploadProof stores a payment-proof image in Cloudinary and returns the
// durable URL the booking form submits with the appointment.
func UploadProof(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Proof of payment is required.",
		})
	}
	if err := validateProofUpload(header); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	file, err := header.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot read uploaded file.",
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, uuid.NewString(), "payments")
	if err != nil {
		log.Printf("proof upload failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Upload failed, please try again.",
		})
	}

	return c.JSON(fiber.Map{"url": url})
}
