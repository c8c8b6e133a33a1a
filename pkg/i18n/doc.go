// Package i18n provides the translated labels and messages of the Smart
// Kitchen header and gateway.
//
// Translations are flat YAML files keyed by language tag:
//
//	zh-TW:
//	  header.anonymous: 尚未登入
//	  gateway.failed: "操作失敗：%{message}"
//
// Named placeholders (%{name}) are replaced from key/value argument pairs.
// Language negotiation uses golang.org/x/text/language, so regional variants
// such as "en-GB" resolve to the closest supported translation.
//
// The built-in translations are embedded; Default returns a translator over
// them with zh-TW as the fallback language.
package i18n
