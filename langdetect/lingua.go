package langdetect

import (
	"context"

	"github.com/abadojack/whatlanggo"
	"github.com/pemistahl/lingua-go"
)

// Languages the service detects. Both offline backends are restricted to
// this set so short inputs cannot drift into unrelated languages.
var linguaSupported = []lingua.Language{
	lingua.English, lingua.Spanish, lingua.French, lingua.German, lingua.Italian,
	lingua.Portuguese, lingua.Dutch, lingua.Russian, lingua.Turkish, lingua.Arabic,
	lingua.Hindi, lingua.Tamil, lingua.Telugu, lingua.Bengali,
	lingua.Chinese, lingua.Japanese, lingua.Korean,
}

var whatlangSupported = []whatlanggo.Lang{
	whatlanggo.Eng, whatlanggo.Spa, whatlanggo.Fra, whatlanggo.Deu, whatlanggo.Ita,
	whatlanggo.Por, whatlanggo.Nld, whatlanggo.Rus, whatlanggo.Tur, whatlanggo.Arb,
	whatlanggo.Hin, whatlanggo.Tam, whatlanggo.Tel, whatlanggo.Ben,
	whatlanggo.Cmn, whatlanggo.Jpn, whatlanggo.Kor,
}

// Lingua is the default detector. It stays accurate on short texts.
type Lingua struct {
	detector lingua.LanguageDetector
}

func NewLingua() *Lingua {
	return &Lingua{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(linguaSupported...).
			Build(),
	}
}

func (d *Lingua) Detect(ctx context.Context, text string) (string, error) {
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", ErrUndetermined
	}
	code := Normalize(language.IsoCode639_1().String())
	if code == "" {
		return "", ErrUndetermined
	}
	return code, nil
}
