package database

import (
	"log"
	"time"

	"agropazar-backend/internal/models"
)

// SeedDemoData: boş veritabanını örnek pazar verisiyle doldurur.
// Eski sistemdeki handler içi sabit mock dizilerinin yerini alır;
// raporların tamamı artık canlı veriden okur. Veritabanında çiftçi
// kaydı varsa hiçbir şey yapmaz (idempotent).
func SeedDemoData() error {
	var count int64
	if err := DB.Model(&models.Farmer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Demo verisi zaten mevcut, seed atlandı.")
		return nil
	}

	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	farmers := []models.Farmer{
		{ID: "F001", Name: "Ahmet Yılmaz", Email: "ahmet@example.com", Phone: "0532 111 1111", Address: "Konya"},
		{ID: "F002", Name: "Ayşe Demir", Email: "ayse@example.com", Phone: "0532 222 2222", Address: "Adana"},
		{ID: "F003", Name: "Mehmet Kaya", Email: "mehmet@example.com", Phone: "0532 333 3333", Address: "İzmir"},
	}
	vendors := []models.Vendor{
		{ID: "V001", Name: "Tarım A.Ş.", Email: "satis@tarimas.example.com", Phone: "0212 444 4444", Address: "İstanbul"},
		{ID: "V002", Name: "Toprak Ltd.", Email: "info@toprak.example.com", Phone: "0312 555 5555", Address: "Ankara"},
	}
	customers := []models.Customer{
		{ID: "C001", Name: "Fatma Şahin", Email: "fatma@example.com", Phone: "0555 666 6666", Address: "Bursa"},
		{ID: "C002", Name: "Ali Çelik", Email: "ali@example.com", Phone: "0555 777 7777", Address: "Antalya"},
		{ID: "C003", Name: "Zeynep Arslan", Email: "zeynep@example.com", Phone: "0555 888 8888", Address: "Mersin"},
	}
	crops := []models.Crop{
		{ID: "CR001", Type: "buğday", Quantity: 500, Price: 8.50, Description: "Anadolu kırmızı sert buğday"},
		{ID: "CR002", Type: "domates", Quantity: 200, Price: 12.00, Description: "Salkım domates"},
		{ID: "CR003", Type: "mısır", Quantity: 0, Price: 6.75, Description: "Tane mısır"},
		{ID: "CR004", Type: "elma", Quantity: 150, Price: 15.00, Description: "Amasya elması"},
	}
	farmerCrops := []models.FarmerCrop{
		{FarmerID: "F001", CropID: "CR001"},
		{FarmerID: "F001", CropID: "CR003"},
		{FarmerID: "F002", CropID: "CR002"},
		{FarmerID: "F003", CropID: "CR004"},
	}
	inventories := []models.FarmerInventory{
		{FarmerID: "F001", CropID: "CR001", StockLevel: 500, LowStock: false},
		{FarmerID: "F001", CropID: "CR003", StockLevel: 0, LowStock: true},
		{FarmerID: "F002", CropID: "CR002", StockLevel: 200, LowStock: false},
		{FarmerID: "F003", CropID: "CR004", StockLevel: 150, LowStock: false},
	}
	products := []models.Product{
		{ID: "P001", Name: "Buğday Tohumu 25kg", Type: "tohum", Price: 450.00, Quantity: 80, Classification: "sertifikalı"},
		{ID: "P002", Name: "Azotlu Gübre 50kg", Type: "gübre", Price: 780.00, Quantity: 120, Classification: "kimyasal"},
		{ID: "P003", Name: "Damla Sulama Seti", Type: "ekipman", Price: 2400.00, Quantity: 15, Classification: "sulama"},
		{ID: "P004", Name: "Organik Kompost 40kg", Type: "gübre", Price: 320.00, Quantity: 0, Classification: "organik"},
	}
	vendorProducts := []models.VendorProduct{
		{VendorID: "V001", ProductID: "P001"},
		{VendorID: "V001", ProductID: "P002"},
		{VendorID: "V002", ProductID: "P003"},
		{VendorID: "V002", ProductID: "P004"},
	}
	vendorInventories := []models.VendorInventory{
		{VendorID: "V001", ProductID: "P001", StockLevel: 80, LowStock: false},
		{VendorID: "V001", ProductID: "P002", StockLevel: 120, LowStock: false},
		{VendorID: "V002", ProductID: "P003", StockLevel: 15, LowStock: false},
		{VendorID: "V002", ProductID: "P004", StockLevel: 0, LowStock: true},
	}
	fcOrders := []models.FarmerCustomerOrder{
		{FarmerID: "F001", CustomerID: "C001", CropID: "CR001", Status: models.OrderStatusDelivered, Quantity: 50, OrderDate: date(2025, 1, 12)},
		{FarmerID: "F001", CustomerID: "C001", CropID: "CR001", Status: models.OrderStatusDelivered, Quantity: 30, OrderDate: date(2025, 2, 3)},
		{FarmerID: "F002", CustomerID: "C001", CropID: "CR002", Status: models.OrderStatusShipped, Quantity: 20, OrderDate: date(2025, 3, 18)},
		{FarmerID: "F002", CustomerID: "C002", CropID: "CR002", Status: models.OrderStatusPending, Quantity: 10, OrderDate: date(2025, 4, 7)},
		{FarmerID: "F003", CustomerID: "C003", CropID: "CR004", Status: models.OrderStatusDelivered, Quantity: 25, OrderDate: date(2024, 11, 21)},
		{FarmerID: "F003", CustomerID: "C001", CropID: "CR004", Status: models.OrderStatusCancelled, Quantity: 5, OrderDate: date(2025, 5, 2)},
	}
	vfOrders := []models.VendorFarmerOrder{
		{VendorID: "V001", FarmerID: "F001", ProductID: "P001", Status: models.OrderStatusDelivered, Quantity: 4, OrderDate: date(2025, 1, 5)},
		{VendorID: "V001", FarmerID: "F002", ProductID: "P002", Status: models.OrderStatusDelivered, Quantity: 6, OrderDate: date(2025, 2, 14)},
		{VendorID: "V002", FarmerID: "F003", ProductID: "P003", Status: models.OrderStatusProcessing, Quantity: 1, OrderDate: date(2025, 3, 9)},
		{VendorID: "V001", FarmerID: "F001", ProductID: "P002", Status: models.OrderStatusDelivered, Quantity: 3, OrderDate: date(2024, 12, 28)},
	}

	for _, group := range []interface{}{
		&farmers, &vendors, &customers, &crops, &farmerCrops, &inventories,
		&products, &vendorProducts, &vendorInventories, &fcOrders, &vfOrders,
	} {
		if err := DB.Create(group).Error; err != nil {
			return err
		}
	}

	// Sipariş ID'leri seed sırasında atandığı için işlem/puan/itiraz
	// kayıtları sipariş insert'lerinden sonra bağlanır.
	transactions := []models.Transaction{
		{OrderID: fcOrders[0].ID, OrderType: models.OrderTypeFarmerCustomer, PaymentMode: "card", Amount: 425.00, Commission: 21.25},
		{OrderID: fcOrders[1].ID, OrderType: models.OrderTypeFarmerCustomer, PaymentMode: "cash", Amount: 255.00, Commission: 12.75},
		{OrderID: vfOrders[0].ID, OrderType: models.OrderTypeVendorFarmer, PaymentMode: "transfer", Amount: 1800.00, Commission: 90.00},
	}
	feedbacks := []models.Feedback{
		{OrderID: fcOrders[0].ID, OrderType: models.OrderTypeFarmerCustomer, FromID: "C001", ToID: "F001", Rating: 5, Comments: "Çok kaliteli ürün"},
		{OrderID: fcOrders[4].ID, OrderType: models.OrderTypeFarmerCustomer, FromID: "C003", ToID: "F003", Rating: 4, Comments: "Teslimat biraz gecikti"},
		{OrderID: vfOrders[0].ID, OrderType: models.OrderTypeVendorFarmer, FromID: "F001", ToID: "V001", Rating: 5, Comments: "Tohum çimlenme oranı yüksek"},
		{OrderID: vfOrders[1].ID, OrderType: models.OrderTypeVendorFarmer, FromID: "F002", ToID: "V001", Rating: 4, Comments: ""},
		{OrderID: vfOrders[2].ID, OrderType: models.OrderTypeVendorFarmer, FromID: "F003", ToID: "V002", Rating: 3, Comments: "Eksik parça vardı"},
	}
	fcDisputes := []models.FarmerCustomerDispute{
		{OrderID: fcOrders[2].ID, DisputeType: models.DisputeTypeDelivery, Status: models.DisputeStatusOpen, Details: "Kargo iki haftadır gelmedi"},
		{OrderID: fcOrders[3].ID, DisputeType: models.DisputeTypeQuality, Status: models.DisputeStatusInvestigating, Details: "Domateslerin bir kısmı ezik çıktı"},
		{OrderID: fcOrders[0].ID, DisputeType: models.DisputeTypePayment, Status: models.DisputeStatusClosed, Details: "Çift tahsilat yapıldı"},
	}
	vfDisputes := []models.VendorFarmerDispute{
		{OrderID: vfOrders[2].ID, DisputeType: models.DisputeTypeOther, Status: models.DisputeStatusOpen, Details: "Fatura bilgisi hatalı"},
	}

	for _, group := range []interface{}{&transactions, &feedbacks, &fcDisputes, &vfDisputes} {
		if err := DB.Create(group).Error; err != nil {
			return err
		}
	}

	log.Println("Demo verisi yüklendi.")
	return nil
}
