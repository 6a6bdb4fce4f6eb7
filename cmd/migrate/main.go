package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sukiejosh/heyfood-assesment-backend/internal/config"
	"github.com/sukiejosh/heyfood-assesment-backend/internal/mock"
	"github.com/sukiejosh/heyfood-assesment-backend/internal/models"
)

func main() {
	// 引数をチェック
	if len(os.Args) < 2 {
		log.Fatal("使用方法: migrate [up|down|seed]")
	}

	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Printf("データベース接続のクローズに失敗しました: %v", err)
		}
	}()

	command := os.Args[1]

	switch command {
	case "up":
		// マイグレーションを実行
		err = db.AutoMigrate(
			&models.Tag{},
			&models.Restaurant{},
			&models.RestaurantTag{},
		)
		if err != nil {
			log.Fatalf("マイグレーションに失敗しました: %v", err)
		}
		fmt.Println("マイグレーションが成功しました")

	case "down":
		// テーブルを削除（逆順）
		err = db.Migrator().DropTable(
			&models.RestaurantTag{},
			&models.Restaurant{},
			&models.Tag{},
		)
		if err != nil {
			log.Fatalf("テーブル削除に失敗しました: %v", err)
		}
		fmt.Println("テーブルの削除が成功しました")

	case "seed":
		// サンプルデータを投入
		if err := mock.Seed(db); err != nil {
			log.Fatalf("サンプルデータの投入に失敗しました: %v", err)
		}
		fmt.Printf("サンプルデータを投入しました (タグ %d件, レストラン %d件)\n", len(mock.Tags), len(mock.Restaurants))

	default:
		log.Fatalf("不明なコマンドです: %s", command)
	}
}
