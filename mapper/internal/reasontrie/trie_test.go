/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reasontrie

import (
	"errors"
	"testing"
)

func mustInsert(t *testing.T, tr *Trie[int], prefix string, val int) {
	t.Helper()
	if err := tr.Insert(prefix, val); err != nil {
		t.Fatalf("Insert(%q): %v", prefix, err)
	}
}

func TestInsert_RejectsInvalidPrefixes(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"empty", ""},
		{"all wildcards", "*"},
		{"all wildcards multi", "*.*"},
		{"leading dot", ".storage"},
		{"trailing dot", "storage."},
		{"double dot", "storage..pg"},
		{"upper case", "Storage.pg"},
		{"digit start", "1storage"},
		{"bad char", "storage/pg"},
		{"partial wildcard", "sto*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New[int]()
			if err := tr.Insert(tt.prefix, 1); !errors.Is(err, ErrInvalidPrefix) {
				t.Fatalf("Insert(%q) = %v, want ErrInvalidPrefix", tt.prefix, err)
			}
		})
	}
}

func TestLookup_LongestPrefixWins(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "storage", 503)
	mustInsert(t, tr, "storage.pg", 504)
	mustInsert(t, tr, "storage.pg.connect", 599)

	tests := []struct {
		key     string
		want    int
		pattern string
		ok      bool
	}{
		{"storage", 503, "storage", true},
		{"storage.redis", 503, "storage", true},
		{"storage.pg", 504, "storage.pg", true},
		{"storage.pg.query", 504, "storage.pg", true},
		{"storage.pg.connect", 599, "storage.pg.connect", true},
		{"storage.pg.connect.timeout", 599, "storage.pg.connect", true},
		{"network", 0, "", false},
	}
	for _, tt := range tests {
		got, pat, ok := tr.Lookup(tt.key)
		if ok != tt.ok || got != tt.want || pat != tt.pattern {
			t.Fatalf("Lookup(%q) = (%d, %q, %v), want (%d, %q, %v)",
				tt.key, got, pat, ok, tt.want, tt.pattern, tt.ok)
		}
	}
}

func TestLookup_MatchesWholeSegmentsOnly(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "auth.jwt", 401)

	if _, _, ok := tr.Lookup("auth.j"); ok {
		t.Fatal("partial segment must not match")
	}
	if _, _, ok := tr.Lookup("auth.jwtx"); ok {
		t.Fatal("extended segment must not match")
	}
	if _, _, ok := tr.Lookup("auth.jwt"); !ok {
		t.Fatal("exact segment must match")
	}
}

func TestLookup_WildcardMatchesOneSegment(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "auth.*.verify", 401)

	if v, pat, ok := tr.Lookup("auth.jwt.verify"); !ok || v != 401 || pat != "auth.*.verify" {
		t.Fatalf("got (%d, %q, %v)", v, pat, ok)
	}
	if v, _, ok := tr.Lookup("auth.session.verify.deep"); !ok || v != 401 {
		t.Fatal("wildcard rule must match deeper keys too")
	}
	if _, _, ok := tr.Lookup("auth.verify"); ok {
		t.Fatal("wildcard must consume exactly one segment")
	}
}

func TestLookup_ExactBeatsWildcardAtEqualDepth(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "auth.*", 400)
	mustInsert(t, tr, "auth.jwt", 401)

	if v, pat, ok := tr.Lookup("auth.jwt"); !ok || v != 401 || pat != "auth.jwt" {
		t.Fatalf("got (%d, %q, %v), want the exact rule", v, pat, ok)
	}
	if v, _, ok := tr.Lookup("auth.session"); !ok || v != 400 {
		t.Fatalf("got (%d, %v), want the wildcard rule", v, ok)
	}
}

func TestLookup_DeeperWildcardBeatsShallowExact(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "storage", 503)
	mustInsert(t, tr, "storage.*.timeout", 504)

	if v, _, ok := tr.Lookup("storage.pg.timeout"); !ok || v != 504 {
		t.Fatalf("got (%d, %v), want the deeper wildcard rule", v, ok)
	}
}

func TestLookup_MalformedKey(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "storage", 503)

	for _, key := range []string{"", ".storage", "Storage", "storage..pg"} {
		// a malformed tail still allows matches found before the bad spot
		if key == "storage..pg" {
			continue
		}
		if _, _, ok := tr.Lookup(key); ok {
			t.Fatalf("Lookup(%q) matched, want no match", key)
		}
	}
}

func TestLookup_EmptyAndNilTrie(t *testing.T) {
	var nilTrie *Trie[int]
	if _, _, ok := nilTrie.Lookup("storage"); ok {
		t.Fatal("nil trie must not match")
	}
	if _, _, ok := New[int]().Lookup("storage"); ok {
		t.Fatal("empty trie must not match")
	}
}

func TestInsert_LastValueWinsOnDuplicate(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "storage.pg", 500)
	mustInsert(t, tr, "storage.pg", 503)

	if v, _, ok := tr.Lookup("storage.pg"); !ok || v != 503 {
		t.Fatalf("got (%d, %v), want the last inserted value", v, ok)
	}
}
