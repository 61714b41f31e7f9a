// Package nhs scrapes the NHS "find a GP" directory: the per-postcode results
// page, each surgery's contact-details page and each surgery's
// ratings-and-reviews page. Fetching and parsing are split so parsed pages can
// come from a cache as well as the network.
package nhs

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"strings"
	"time"

	"gpfinder-backend/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/nhs")

const BaseUrl = "https://www.nhs.uk"

func ListingUrl(postcode string) string {
	postcode = strings.ReplaceAll(postcode, " ", "")
	return fmt.Sprintf("%s/service-search/find-a-gp/results/%s", BaseUrl, postcode)
}

func DetailUrl(nhsUrl string) string {
	return nhsUrl + "/contact-details-and-opening-times"
}

func ReviewsUrl(nhsUrl string) string {
	return nhsUrl + "/ratings-and-reviews"
}

type Client struct {
	Http *resty.Client
}

func NewClient() (*Client, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeaders(map[string]string{
		"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.5",
		"Accept-Encoding":           "gzip, deflate",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
	})
	client.SetTimeout(time.Second * 10)

	return &Client{Http: client}, nil
}

func (c *Client) SetInstrumentOutput(out restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.Http, tracer, out)
}

// GetPage issues a single GET for the given page. There is no retry loop, a
// transport failure is final for this page within a run.
func (c *Client) GetPage(ctx context.Context, url string) ([]byte, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("unexpected status %d fetching %s", res.StatusCode(), url)
	}
	return res.Body(), nil
}
