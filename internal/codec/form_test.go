package codec

import (
	"reflect"
	"testing"
)

func TestParseForm(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"percent_decoding", "username=alice&password=p%40ss", map[string]string{"username": "alice", "password": "p@ss"}},
		{"stray_ampersands_skipped", "username=bob&&password=secret&", map[string]string{"username": "bob", "password": "secret"}},
		{"pair_without_equals_skipped", "username&password=x", map[string]string{"password": "x"}},
		{"pair_with_two_equals_skipped", "username=a=b&password=x", map[string]string{"password": "x"}},
		{"last_duplicate_wins", "username=a&username=b", map[string]string{"username": "b"}},
		{"plus_is_literal", "password=a+b", map[string]string{"password": "a+b"}},
		{"encoded_space", "password=a%20b", map[string]string{"password": "a b"}},
		{"malformed_escape_kept_raw", "password=100%", map[string]string{"password": "100%"}},
		{"good_and_bad_escapes_mixed", "password=p%40ss%", map[string]string{"password": "p@ss%"}},
		{"bad_hex_escape_kept_good_decoded", "password=%zz%41%4", map[string]string{"password": "%zzA%4"}},
		{"lowercase_hex", "password=%2f%2F", map[string]string{"password": "//"}},
		{"multibyte_utf8", "username=%C3%A9mile", map[string]string{"username": "émile"}},
		{"invalid_utf8_replaced", "password=%FF", map[string]string{"password": "\uFFFD"}},
		{"invalid_utf8_between_text", "password=a%FFb", map[string]string{"password": "a\uFFFDb"}},
		{"raw_invalid_utf8_replaced", "password=a\xffb", map[string]string{"password": "a\uFFFDb"}},
		{"empty_value", "username=", map[string]string{"username": ""}},
		{"encoded_key", "user%6Eame=eve", map[string]string{"username": "eve"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseForm(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseForm(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseQuery(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"leading_question_mark", "?username=bob", map[string]string{"username": "bob"}},
		{"no_question_mark", "username=bob", map[string]string{"username": "bob"}},
		{"only_one_question_mark_stripped", "??username=bob", map[string]string{"?username": "bob"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseQuery(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseQuery(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
