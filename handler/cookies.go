package handler

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const flashKey = "flash"

// cookieStore adapts a signed gorilla session cookie to storage.Store so the
// session holder can persist credentials between requests. Changes are only
// written out by save.
type cookieStore struct {
	sess  *sessions.Session
	dirty bool
}

func (c *cookieStore) Get(key string) (string, bool) {
	v, ok := c.sess.Values[key].(string)
	return v, ok
}

func (c *cookieStore) Set(key, value string) error {
	c.sess.Values[key] = value
	c.dirty = true
	return nil
}

func (c *cookieStore) Delete(keys ...string) error {
	for _, k := range keys {
		if _, ok := c.sess.Values[k]; ok {
			delete(c.sess.Values, k)
			c.dirty = true
		}
	}
	return nil
}

func (c *cookieStore) addFlash(message string) {
	c.sess.AddFlash(message, flashKey)
	c.dirty = true
}

func (c *cookieStore) popFlash() string {
	flashes := c.sess.Flashes(flashKey)
	if len(flashes) == 0 {
		return ""
	}
	c.dirty = true
	msg, _ := flashes[0].(string)
	return msg
}

// save writes the cookie if anything changed. It must run before the
// response headers are written.
func (c *cookieStore) save(w http.ResponseWriter, r *http.Request) error {
	if !c.dirty {
		return nil
	}
	c.dirty = false
	return c.sess.Save(r, w)
}
