package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
)

func TestDisposition_LinkPair(t *testing.T) {
	d := &model.Disposition{Link: "https://docs.example.com/a|https://drive.example.com/b"}
	first, second := d.LinkPair()
	gt.S(t, first).Equal("https://docs.example.com/a")
	gt.S(t, second).Equal("https://drive.example.com/b")

	d.Link = "https://docs.example.com/only"
	first, second = d.LinkPair()
	gt.S(t, first).Equal("https://docs.example.com/only")
	gt.S(t, second).Equal("")
}

func TestDisposition_StampEdit(t *testing.T) {
	now := time.Now().UTC()
	d := &model.Disposition{}
	d.StampEdit("U42", now)

	gt.V(t, d.LastEditedBy).Equal("U42")
	gt.V(t, d.LastEditedAt).NotNil()
	gt.B(t, d.LastEditedAt.Equal(now)).True()
}
