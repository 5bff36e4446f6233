/*
Copyright © 2025 lehoangvu
*/
package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lehoangvu/docchat-be/types"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload [files...]",
	Short: "Upload PDF documents to a running server",
	Long: `Posts one or more local PDF files to the /upload endpoint of a
running docchat-be server. Uploading starts a fresh conversation.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		serverURL, _ := cmd.Flags().GetString("server")

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				log.Fatalf("Failed to read %s: %v", path, err)
			}
			part, err := writer.CreateFormFile("files", filepath.Base(path))
			if err != nil {
				log.Fatalf("Failed to build request: %v", err)
			}
			if _, err := part.Write(data); err != nil {
				log.Fatalf("Failed to build request: %v", err)
			}
		}
		if err := writer.Close(); err != nil {
			log.Fatalf("Failed to build request: %v", err)
		}

		resp, err := http.Post(serverURL+"/upload", writer.FormDataContentType(), &body)
		if err != nil {
			log.Fatalf("Upload failed: %v", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			log.Fatalf("Failed to read response: %v", err)
		}
		var result types.StatusResponse
		if err := json.Unmarshal(respBody, &result); err != nil {
			log.Fatalf("Unexpected response: %s", respBody)
		}
		if !result.Success {
			log.Fatalf("Upload rejected: %s", result.Message)
		}
		fmt.Println("Stored:", result.Message)
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringP("server", "s", "http://localhost:8080", "Base URL of the running server")
}
