package services

import (
	"context"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/vnkhanh/video-catalog-backend/models"
	"github.com/vnkhanh/video-catalog-backend/utils"
)

// VideoInfo là phần metadata lấy từ nhà cung cấp bên ngoài
type VideoInfo struct {
	VideoTitle           string           `json:"videoTitle"`
	VideoDescription     string           `json:"videoDescription"`
	VideoThumbnails      models.Thumbnail `json:"videoThumbnails"`
	VideoChannelTitle    string           `json:"videoChannelTitle"`
	VideoDefaultLanguage string           `json:"videoDefaultLanguage"`
	VideoDuration        string           `json:"videoDuration"`
	OriginalURL          string           `json:"originalUrl"`
}

// VideoInfoProvider trừu tượng hóa dịch vụ metadata bên ngoài,
// controller chỉ phụ thuộc interface này
type VideoInfoProvider interface {
	GetVideoInfo(ctx context.Context, videoID, videoURL string) (*VideoInfo, error)
}

type YouTubeService struct {
	yt *youtube.Service
}

func NewYouTubeService(ctx context.Context, apiKey string) (*YouTubeService, error) {
	yt, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &YouTubeService{yt: yt}, nil
}

// GetVideoInfo gọi YouTube Data API lấy metadata của video
func (s *YouTubeService) GetVideoInfo(ctx context.Context, videoID, videoURL string) (*VideoInfo, error) {
	resp, err := s.yt.Videos.
		List([]string{"snippet", "contentDetails"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, utils.NewInternal()
	}
	if len(resp.Items) == 0 {
		return nil, utils.NewNotFound("YouTube video id not found!")
	}

	item := resp.Items[0]
	thumbnail := item.Snippet.Thumbnails.Default
	if item.Snippet.Thumbnails.Standard != nil {
		thumbnail = item.Snippet.Thumbnails.Standard
	}

	info := &VideoInfo{
		VideoTitle:           item.Snippet.Title,
		VideoDescription:     item.Snippet.Description,
		VideoChannelTitle:    item.Snippet.ChannelTitle,
		VideoDefaultLanguage: videoLanguage(item.Snippet),
		VideoDuration:        item.ContentDetails.Duration,
		OriginalURL:          videoURL,
	}
	if thumbnail != nil {
		info.VideoThumbnails = models.Thumbnail{
			URL:    thumbnail.Url,
			Width:  int(thumbnail.Width),
			Height: int(thumbnail.Height),
		}
	}
	return info, nil
}

// videoLanguage: "zxx" nghĩa là không có nội dung ngôn ngữ,
// khi đó dùng defaultLanguage thay cho defaultAudioLanguage
func videoLanguage(snippet *youtube.VideoSnippet) string {
	if snippet.DefaultAudioLanguage == "zxx" {
		return snippet.DefaultLanguage
	}
	return snippet.DefaultAudioLanguage
}
