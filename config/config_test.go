package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tonearm-cli/tonearm/filesystem"
	"github.com/tonearm-cli/tonearm/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.PlayerEngine), ShouldEqual, "mpg123")
			So(viper.GetInt(key.HistorySize), ShouldEqual, 100)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("player.engine_args")
			So(result, ShouldEqual, "player_engine_args")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		Convey("Env should carry the application prefix", func() {
			f := Default[key.PlayerEngine]
			So(f.Env(), ShouldEqual, "TONEARM_PLAYER_ENGINE")
		})

		Convey("Registry should match the declared schema size", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
			So(len(EnvExposed), ShouldEqual, key.DefinedFieldsCount)
		})
	})
}
