package feed

import (
	"bytes"
	"encoding/xml"
	"io"
	"net/url"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// xmlProduct mirrors one <product> element of the wholesaler feed. Both
// category shapes seen in the wild are accepted: bare <category> children and
// a <categories> wrapper.
type xmlProduct struct {
	ID              string         `xml:"id"`
	Code            string         `xml:"code"`
	Name            string         `xml:"name"`
	Description     string         `xml:"description"`
	Producer        string         `xml:"producer"`
	Active          string         `xml:"active"`
	Categories      []string       `xml:"category"`
	CategoriesAlt   []string       `xml:"categories>category"`
	PriceNet        string         `xml:"price_netto"`
	DefaultPriceNet string         `xml:"default_price_netto"`
	Quantity        string         `xml:"quantity"`
	Imgs            []xmlImage     `xml:"images>img"`
	LargeImage      string         `xml:"images>large"`
	MainImage       string         `xml:"images>main"`
	Weight          string         `xml:"weight"`
	Unit            string         `xml:"unit"`
	MinOrder        string         `xml:"min_order"`
	Attributes      []xmlAttribute `xml:"attribute"`
}

type xmlImage struct {
	URL string `xml:"url"`
}

type xmlAttribute struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value"`
}

// xmlStock mirrors one <product> element of the secondary stock/price feed.
type xmlStock struct {
	Code     string `xml:"code"`
	Quantity string `xml:"quantity"`
	PriceNet string `xml:"price_netto"`
	Active   string `xml:"active"`
	MinOrder string `xml:"min_order"`
}

// ParseCatalog converts a full XML catalog document into Product records.
// Records missing id, code or name are dropped; a malformed record is skipped
// with a warning and does not abort the rest of the document. A document with
// no XML content at all fails with ParseError.
func ParseCatalog(doc []byte) ([]Product, error) {
	var products []Product

	err := scanProducts(doc, func(dec *xml.Decoder, se xml.StartElement) {
		var raw xmlProduct
		if err := dec.DecodeElement(&raw, &se); err != nil {
			log.Warnf("feed: skipping malformed product record: %v", err)
			return
		}
		if p, ok := raw.toProduct(); ok {
			products = append(products, p)
		}
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// ParseStock converts a stock/price XML document into overlay records keyed
// by SKU. The same permissive policy as ParseCatalog applies.
func ParseStock(doc []byte) ([]StockRecord, error) {
	var records []StockRecord

	err := scanProducts(doc, func(dec *xml.Decoder, se xml.StartElement) {
		var raw xmlStock
		if err := dec.DecodeElement(&raw, &se); err != nil {
			log.Warnf("feed: skipping malformed stock record: %v", err)
			return
		}
		sku := cleanText(raw.Code)
		if sku == "" {
			return
		}
		records = append(records, StockRecord{
			SKU:              sku,
			PriceNet:         cleanText(raw.PriceNet),
			StockQuantity:    cleanText(raw.Quantity),
			Active:           parseActive(raw.Active),
			MinOrderQuantity: cleanText(raw.MinOrder),
		})
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// scanProducts walks the token stream and hands every <product> start element
// to handle. Stream errors before any element was seen mean the body is not
// XML; after that point they mean a truncated document, which keeps whatever
// was already parsed.
func scanProducts(doc []byte, handle func(*xml.Decoder, xml.StartElement)) error {
	dec := xml.NewDecoder(bytes.NewReader(doc))
	sawElement := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if !sawElement {
				return &ParseError{Err: err}
			}
			log.Warnf("feed: document truncated: %v", err)
			break
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true
		if se.Name.Local != "product" {
			continue
		}
		handle(dec, se)
	}

	if !sawElement {
		return &ParseError{Err: errNotXML}
	}
	return nil
}

var errNotXML = errNoXMLContent{}

type errNoXMLContent struct{}

func (errNoXMLContent) Error() string { return "document contains no XML elements" }

func (x xmlProduct) toProduct() (Product, bool) {
	id := cleanText(x.ID)
	sku := cleanText(x.Code)
	name := cleanText(x.Name)
	if id == "" || sku == "" || name == "" {
		return Product{}, false
	}

	var categories []string
	for _, c := range append(x.Categories, x.CategoriesAlt...) {
		if c = cleanText(c); c != "" {
			categories = append(categories, c)
		}
	}

	var images []string
	for _, img := range x.Imgs {
		if u := cleanText(img.URL); isAbsoluteURL(u) {
			images = append(images, u)
		}
	}
	if len(images) == 0 {
		// single-field image shape used by the static feed variant
		for _, u := range []string{x.LargeImage, x.MainImage} {
			if u = cleanText(u); isAbsoluteURL(u) {
				images = append(images, u)
				break
			}
		}
	}

	ean := ""
	for _, attr := range x.Attributes {
		if attr.Type == "1" {
			ean = cleanText(attr.Value)
			break
		}
	}

	priceNet := orDefault(cleanText(x.PriceNet), "0")

	return Product{
		ID:               id,
		SKU:              sku,
		Name:             name,
		Description:      cleanText(x.Description),
		Manufacturer:     cleanText(x.Producer),
		Categories:       categories,
		PriceNet:         priceNet,
		PriceGross:       GrossPrice(priceNet),
		DefaultPriceNet:  orDefault(cleanText(x.DefaultPriceNet), "0"),
		StockQuantity:    orDefault(cleanText(x.Quantity), "0"),
		Active:           parseActive(x.Active),
		Images:           images,
		Weight:           orDefault(cleanText(x.Weight), "0"),
		Unit:             orDefault(cleanText(x.Unit), "sztuka"),
		EAN:              ean,
		MinOrderQuantity: orDefault(cleanText(x.MinOrder), "1"),
	}, true
}

var strayTags = regexp.MustCompile(`<[^>]*>`)

// cleanText strips leftover CDATA markers and stray embedded tags, then trims
// surrounding whitespace. Applied uniformly to every extracted field.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "<![CDATA[", "")
	s = strings.ReplaceAll(s, "]]>", "")
	s = strayTags.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func parseActive(s string) bool {
	s = cleanText(s)
	return s == "1" || strings.EqualFold(s, "true")
}

func isAbsoluteURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
