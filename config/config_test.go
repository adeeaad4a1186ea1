package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/themer-cli/themer/filesystem"
	"github.com/themer-cli/themer/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should register every defined key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.StorageBackend), ShouldEqual, "local")
			So(viper.GetDuration(key.AppearancePollInterval), ShouldEqual, 2*time.Second)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("storage.backend"), ShouldEqual, "storage_backend")
		})

		Convey("Field.Env should carry the application prefix once", func() {
			f := Default[key.StorageBackend]
			So(f.Env(), ShouldEqual, "THEMER_STORAGE_BACKEND")
		})

		Convey("Field.TypeName should describe durations", func() {
			f := Default[key.AppearancePollInterval]
			So(f.TypeName(), ShouldEqual, "duration")
		})
	})
}
