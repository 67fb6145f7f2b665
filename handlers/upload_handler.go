// file: handlers/upload_handler.go
package handlers

import (
	"context"
	"net/url"
	"strconv"
	"time"

	config "github.com/anjiri1684/edu_assist/configs"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

const uploadFolder = "edu_assist_uploads"

// uploadImage sends a multipart file field to Cloudinary and returns the
// stable secure URL, or nil when the field is absent.
func uploadImage(c *fiber.Ctx, field, folder string) (*string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return nil, err
	}

	result, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder: uploadFolder + "/" + folder,
	})
	if err != nil {
		return nil, err
	}

	return &result.SecureURL, nil
}

// GenerateUploadSignature creates a secure signature for a frontend upload.
func GenerateUploadSignature(c *fiber.Ctx) error {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to initialize Cloudinary"})
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to parse Cloudinary URL"})
	}
	secret, _ := parsedURL.User.Password()

	paramsToSign, err := api.StructToParams(uploader.UploadParams{
		Folder: uploadFolder,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to prepare signature params"})
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to sign upload params"})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   cld.Config.Cloud.APIKey,
		"folder":    uploadFolder,
	})
}
