// Package i18n registers the notification strings shown by the
// presentation adapters and picks a language for a user.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	KeyReach   = "bingo.reach"
	KeyBingo   = "bingo.bingo"
	KeyFree    = "bingo.free"
	KeyHint    = "bingo.hint"
	KeyNewCard = "bingo.new_card"
	KeyHelp    = "bingo.help"
	KeyCards   = "bingo.cards"
)

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		KeyReach:   "Reach!",
		KeyBingo:   "Bingo!",
		KeyFree:    "Free",
		KeyHint:    "%d cell(s) would complete a line",
		KeyNewCard: "New card",
		KeyHelp:    "arrows/click: mark  space: mark  h: hint  n: new card  q: quit",
		KeyCards:   "cards this session: %d",
	},
	language.Japanese: {
		KeyReach:   "リーチ！",
		KeyBingo:   "ビンゴ！",
		KeyFree:    "Free",
		KeyHint:    "あと%dマスでライン完成",
		KeyNewCard: "新しいカード",
		KeyHelp:    "矢印/クリック: 選択  space: マーク  h: ヒント  n: 新しいカード  q: 終了",
		KeyCards:   "このセッションのカード: %d",
	},
}

var supported = []language.Tag{language.English, language.Japanese}

var matcher = language.NewMatcher(supported)

func init() {
	if err := register(); err != nil {
		panic(err)
	}
}

func register() error {
	for tag, msgs := range catalogs {
		for key, val := range msgs {
			if err := message.SetString(tag, key, val); err != nil {
				return fmt.Errorf("register %s %s: %w", tag, key, err)
			}
		}
	}
	return nil
}

// Supported returns the languages with a catalog, default first.
func Supported() []language.Tag { return append([]language.Tag(nil), supported...) }

// Default is used when nothing better matches.
func Default() language.Tag { return language.English }

// Match picks the best supported language for the given preferences.
// Each preference may be a BCP 47 tag, an Accept-Language header, or a
// POSIX locale such as "ja_JP.UTF-8". Unparseable entries are skipped.
func Match(prefs ...string) language.Tag {
	var tags []language.Tag
	for _, p := range prefs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.ContainsAny(p, ",;") {
			if parsed, _, err := language.ParseAcceptLanguage(p); err == nil {
				tags = append(tags, parsed...)
			}
			continue
		}
		if i := strings.IndexAny(p, ".@"); i >= 0 {
			p = p[:i]
		}
		if tag, err := language.Parse(strings.ReplaceAll(p, "_", "-")); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return Default()
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	return supported[idx]
}

// Printer returns a printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
