package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/u-share/sortflow/internal/cli"
	"github.com/u-share/sortflow/internal/model"
	"github.com/u-share/sortflow/internal/recognize"
	"github.com/u-share/sortflow/internal/router"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify waste by text, voice recording, or photo",
	}

	cmd.AddCommand(classifyTextCmd())
	cmd.AddCommand(classifyVoiceCmd())
	cmd.AddCommand(classifyImageCmd())

	return cmd
}

func classifyTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text <name>",
		Short: "Classify a waste item by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.guardRoute(router.PathTextRecognition); err != nil {
				return err
			}

			result, err := a.recognize.ClassifyByText(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printResult(result)
			return nil
		},
	}
}

func classifyVoiceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "voice <audio-file>",
		Short: "Classify waste from a voice recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.guardRoute(router.PathVoiceRecognition); err != nil {
				return err
			}

			up, done, err := uploadWithProgress(args[0])
			if err != nil {
				return err
			}
			defer done()

			result, err := a.recognize.SpeechToText(cmd.Context(), up)
			if err != nil {
				return err
			}
			printResult(result)
			return nil
		},
	}
}

func classifyImageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "image <image-file>",
		Short: "Classify waste from a photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.guardRoute(router.PathImageRecognition); err != nil {
				return err
			}

			up, done, err := uploadWithProgress(args[0])
			if err != nil {
				return err
			}
			defer done()

			result, err := a.recognize.RecognizeImage(cmd.Context(), up)
			if err != nil {
				return err
			}
			printResult(result)
			return nil
		},
	}
}

func uploadWithProgress(path string) (recognize.Upload, func() error, error) {
	up, done, err := recognize.UploadFromFile(path)
	if err != nil {
		return recognize.Upload{}, nil, err
	}

	bar := progressbar.DefaultBytes(up.Size, "uploading")
	up.Reader = io.TeeReader(up.Reader, bar)
	return up, done, nil
}

func printResult(result model.ClassificationResult) {
	var b strings.Builder

	tag := cli.CategoryStyle(result.TypeClass).Render(string(result.Type))
	b.WriteString(fmt.Sprintf("%s  %s\n", result.Name, tag))
	b.WriteString(result.Description + "\n")
	b.WriteString(cli.SubtleStyle.Render(result.Tips))

	if result.Confidence > 0 {
		b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("\n置信度: %d%%", result.Confidence)))
	}
	if len(result.Similar) > 0 {
		b.WriteString("\n\n相似物品:")
		for _, item := range result.Similar {
			b.WriteString(fmt.Sprintf("\n  %s (%d%%)", item.Name, item.Match))
		}
	}

	fmt.Println(cli.BoxStyle.Render(b.String()))
}
